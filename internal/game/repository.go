package game

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/vinquiz/internal/quiz"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TypeStats struct {
	GameType    quiz.GameType
	TimesPlayed int64
	BestScore   int
}

type Repository interface {
	Create(ctx context.Context, g *Game) error
	FindByID(ctx context.Context, id uuid.UUID) (*Game, error)

	// The guarded updates below apply only while the game is active and
	// still at round. They report false when nothing matched.
	SetPending(ctx context.Context, id uuid.UUID, round int, pending quiz.Pending) (bool, error)
	RecordCorrect(ctx context.Context, id uuid.UUID, round int) (bool, error)
	End(ctx context.Context, id uuid.UUID, round int, at time.Time) (bool, error)

	StatsByPlayer(ctx context.Context, playerID uuid.UUID) ([]TypeStats, error)
	WithTx(tx *gorm.DB) Repository
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, g *Game) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*Game, error) {
	var g Game
	if err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &g, nil
}

func (r *repository) guarded(ctx context.Context, id uuid.UUID, round int, values map[string]interface{}) (bool, error) {
	values["round"] = round + 1
	res := r.db.WithContext(ctx).Model(&Game{}).
		Where("id = ? AND status = ? AND round = ?", id, StatusActive, round).
		Updates(values)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *repository) SetPending(ctx context.Context, id uuid.UUID, round int, pending quiz.Pending) (bool, error) {
	options, err := json.Marshal(pending.Options)
	if err != nil {
		return false, err
	}
	return r.guarded(ctx, id, round, map[string]interface{}{
		"pending_subject_id": pending.SubjectID,
		"pending_options":    datatypes.JSON(options),
	})
}

func (r *repository) RecordCorrect(ctx context.Context, id uuid.UUID, round int) (bool, error) {
	return r.guarded(ctx, id, round, map[string]interface{}{
		"score":              gorm.Expr("score + ?", 1),
		"pending_subject_id": nil,
		"pending_options":    nil,
	})
}

func (r *repository) End(ctx context.Context, id uuid.UUID, round int, at time.Time) (bool, error) {
	return r.guarded(ctx, id, round, map[string]interface{}{
		"status":             StatusOver,
		"ended_at":           at,
		"pending_subject_id": nil,
		"pending_options":    nil,
	})
}

func (r *repository) StatsByPlayer(ctx context.Context, playerID uuid.UUID) ([]TypeStats, error) {
	var rows []TypeStats
	err := r.db.WithContext(ctx).Model(&Game{}).
		Select("game_type, COUNT(*) AS times_played, MAX(score) AS best_score").
		Where("player_id = ?", playerID).
		Group("game_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
