package game

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/vinquiz/internal/quiz"
	"gorm.io/datatypes"
)

// Game is one play-through of a quiz. Round is bumped on every write and
// guards updates against concurrent requests.
type Game struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PlayerID         uuid.UUID       `gorm:"type:uuid;index;not null" json:"player_id"`
	GameType         quiz.GameType   `gorm:"size:32;index;not null" json:"game_type"`
	Score            int             `gorm:"not null;default:0" json:"score"`
	Status           Status          `gorm:"size:8;not null" json:"status"`
	Round            int             `gorm:"not null;default:0" json:"round"`
	PendingSubjectID *int            `json:"-"`
	PendingOptions   *datatypes.JSON `json:"-"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	EndedAt          *time.Time      `json:"ended_at,omitempty"`
}

func (Game) TableName() string { return "games" }

func (g *Game) IsLive() bool {
	return g.Status == StatusActive
}

// Pending returns the question last served, if it has not been answered.
func (g *Game) Pending() (quiz.Pending, bool, error) {
	if g.PendingSubjectID == nil || g.PendingOptions == nil || len(*g.PendingOptions) == 0 {
		return quiz.Pending{}, false, nil
	}
	var options []string
	if err := json.Unmarshal(*g.PendingOptions, &options); err != nil {
		return quiz.Pending{}, false, err
	}
	return quiz.Pending{SubjectID: *g.PendingSubjectID, Options: options}, true, nil
}
