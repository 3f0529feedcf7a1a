package quiz

import (
	"testing"

	"github.com/saulo-duarte/vinquiz/internal/catalog"
)

func TestParseGameType(t *testing.T) {
	tests := []struct {
		in      string
		want    GameType
		wantErr bool
	}{
		{"GRAPE_COLOR_QUIZ", GrapeColorQuiz, false},
		{"grape_region_quiz", GrapeRegionQuiz, false},
		{"quiz_aoc_color", DesignationColorQuiz, false},
		{" quiz_aoc_region ", DesignationRegionQuiz, false},
		{"quiz_wine_price", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseGameType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseGameType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseGameType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGameTypeMetadata(t *testing.T) {
	if len(AllGameTypes) != 4 {
		t.Fatalf("expected four game types, got %d", len(AllGameTypes))
	}
	for _, gt := range AllGameTypes {
		if gt.DisplayName() == "" || gt.Slug() == "" {
			t.Errorf("%s is missing display metadata", gt)
		}
		if _, err := gt.Strategy(0); err != nil {
			t.Errorf("%s has no strategy: %v", gt, err)
		}
	}
	if DesignationColorQuiz.SubjectKind() != catalog.KindDesignation {
		t.Error("designation quizzes draw designations")
	}
	if GrapeRegionQuiz.SubjectKind() != catalog.KindGrape {
		t.Error("grape quizzes draw grapes")
	}
	if _, err := GameType("CHEESE").Strategy(1); err != ErrUnknownGameType {
		t.Errorf("unknown type should fail, got %v", err)
	}
}
