package catalog

import "strings"

type GrapeVariety struct {
	ID         int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name       string `gorm:"size:140;not null" json:"name"`
	Regions    string `gorm:"size:140" json:"regions"`
	SubRegions string `gorm:"size:140" json:"sub_regions"`
	Vineyards  string `gorm:"size:140" json:"vineyards"`
	AreaFrance *int   `json:"area_france,omitempty"`
	AreaWorld  *int   `json:"area_world,omitempty"`
	Red        bool   `gorm:"index" json:"red"`
}

func (GrapeVariety) TableName() string { return "grape_varieties" }

func (g *GrapeVariety) SubjectID() int      { return g.ID }
func (g *GrapeVariety) SubjectName() string { return g.Name }

// WineDesignation is a protected designation (AOC). Any combination of the
// six style flags may be set.
type WineDesignation struct {
	ID             int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name           string `gorm:"size:140;not null" json:"name"`
	Vineyard       string `gorm:"size:140" json:"vineyard"`
	StillWhite     bool   `json:"still_white"`
	StillRose      bool   `json:"still_rose"`
	StillRed       bool   `json:"still_red"`
	SparklingWhite bool   `json:"sparkling_white"`
	SparklingRose  bool   `json:"sparkling_rose"`
	SparklingRed   bool   `json:"sparkling_red"`
}

func (WineDesignation) TableName() string { return "wine_designations" }

func (d *WineDesignation) SubjectID() int { return d.ID }

// SubjectName drops alternate names ("X ou Y" shows as "X").
func (d *WineDesignation) SubjectName() string {
	if i := strings.Index(d.Name, " ou"); i > 0 {
		return d.Name[:i]
	}
	return d.Name
}

func (d *WineDesignation) IsRed() bool {
	return d.StillRed || d.SparklingRed
}

// IsWhite counts rosé styles as white: the color quiz only offers Red or White.
func (d *WineDesignation) IsWhite() bool {
	return d.StillWhite || d.SparklingWhite || d.StillRose || d.SparklingRose
}

// Subject is the common view of a quiz subject.
type Subject interface {
	SubjectID() int
	SubjectName() string
}
