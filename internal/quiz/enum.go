package quiz

import (
	"strings"

	"github.com/saulo-duarte/vinquiz/internal/catalog"
)

type GameType string

const (
	GrapeColorQuiz        GameType = "GRAPE_COLOR_QUIZ"
	GrapeRegionQuiz       GameType = "GRAPE_REGION_QUIZ"
	DesignationColorQuiz  GameType = "DESIGNATION_COLOR_QUIZ"
	DesignationRegionQuiz GameType = "DESIGNATION_REGION_QUIZ"
)

var AllGameTypes = []GameType{
	GrapeColorQuiz,
	GrapeRegionQuiz,
	DesignationColorQuiz,
	DesignationRegionQuiz,
}

var displayNames = map[GameType]string{
	GrapeColorQuiz:        "Grape Color Quiz",
	GrapeRegionQuiz:       "Grape Region Quiz",
	DesignationColorQuiz:  "AOC Color Quiz",
	DesignationRegionQuiz: "AOC Region Quiz",
}

var slugs = map[GameType]string{
	GrapeColorQuiz:        "quiz_grape_color",
	GrapeRegionQuiz:       "quiz_grape_region",
	DesignationColorQuiz:  "quiz_aoc_color",
	DesignationRegionQuiz: "quiz_aoc_region",
}

func (t GameType) IsValid() bool {
	_, ok := displayNames[t]
	return ok
}

func (t GameType) DisplayName() string { return displayNames[t] }

func (t GameType) Slug() string { return slugs[t] }

// SubjectKind is the catalog collection the game draws its subjects from.
func (t GameType) SubjectKind() catalog.Kind {
	if t == DesignationColorQuiz || t == DesignationRegionQuiz {
		return catalog.KindDesignation
	}
	return catalog.KindGrape
}

// ParseGameType accepts the enum value or its url slug.
func ParseGameType(s string) (GameType, error) {
	s = strings.TrimSpace(s)
	for _, t := range AllGameTypes {
		if strings.EqualFold(s, string(t)) || s == slugs[t] {
			return t, nil
		}
	}
	return "", ErrUnknownGameType
}

const (
	LabelRed   = "Red"
	LabelWhite = "White"
)
