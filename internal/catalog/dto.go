package catalog

type GrapePage struct {
	Items    []GrapeVariety `json:"items"`
	Page     int            `json:"page"`
	Total    int64          `json:"total"`
	NextPage *int           `json:"next_page"`
	PrevPage *int           `json:"prev_page"`
}

type DesignationPage struct {
	Items    []WineDesignation `json:"items"`
	Page     int               `json:"page"`
	Total    int64             `json:"total"`
	NextPage *int              `json:"next_page"`
	PrevPage *int              `json:"prev_page"`
}

type GrapeCard struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Red        bool   `json:"red"`
	Regions    string `json:"regions"`
	SubRegions string `json:"sub_regions"`
	Vineyards  string `json:"vineyards"`
	AreaFrance string `json:"area_france"`
	AreaWorld  string `json:"area_world"`
	PrevID     *int   `json:"prev_id"`
	NextID     *int   `json:"next_id"`
}

type DesignationCard struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Vineyard string `json:"vineyard"`
	Red      bool   `json:"red"`
	White    bool   `json:"white"`
	PrevID   *int   `json:"prev_id"`
	NextID   *int   `json:"next_id"`
}
