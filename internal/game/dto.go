package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/vinquiz/internal/catalog"
	"github.com/saulo-duarte/vinquiz/internal/quiz"
)

type StartGameDTO struct {
	GameType string `json:"game_type"`
}

type AnswerDTO struct {
	Choice string `json:"choice"`
}

type GameTypeResponse struct {
	GameType    quiz.GameType `json:"game_type"`
	DisplayName string        `json:"display_name"`
	Slug        string        `json:"slug"`
}

type GameResponse struct {
	ID          uuid.UUID     `json:"id"`
	GameType    quiz.GameType `json:"game_type"`
	DisplayName string        `json:"display_name"`
	Score       int           `json:"score"`
	Status      Status        `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	EndedAt     *time.Time    `json:"ended_at,omitempty"`
}

// QuestionResponse carries only what the player sees. The correct label
// stays on the server.
type QuestionResponse struct {
	GameID      uuid.UUID     `json:"game_id"`
	GameType    quiz.GameType `json:"game_type"`
	SubjectKind catalog.Kind  `json:"subject_kind"`
	SubjectName string        `json:"subject_name"`
	LeftLabel   string        `json:"left_label"`
	RightLabel  string        `json:"right_label"`
	Score       int           `json:"score"`
}

type Outcome struct {
	Result OutcomeResult `json:"result"`
	Score  int           `json:"score"`
	Status Status        `json:"status"`

	// Set when the game ended.
	Recap       string       `json:"recap,omitempty"`
	SubjectKind catalog.Kind `json:"subject_kind,omitempty"`
	SubjectID   int          `json:"subject_id,omitempty"`
}

type StatsRow struct {
	GameType    quiz.GameType `json:"game_type"`
	DisplayName string        `json:"display_name"`
	TimesPlayed int64         `json:"times_played"`

	// BestScore is null when the type was never played.
	BestScore *int `json:"best_score"`
}

type StatsResponse struct {
	Games      []StatsRow `json:"games"`
	TotalGames int64      `json:"total_games"`
}

func toResponse(g *Game) *GameResponse {
	return &GameResponse{
		ID:          g.ID,
		GameType:    g.GameType,
		DisplayName: g.GameType.DisplayName(),
		Score:       g.Score,
		Status:      g.Status,
		CreatedAt:   g.CreatedAt,
		EndedAt:     g.EndedAt,
	}
}
