package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/vinquiz/internal/catalog"
	"github.com/saulo-duarte/vinquiz/internal/config"
	"github.com/saulo-duarte/vinquiz/internal/quiz"
	"github.com/saulo-duarte/vinquiz/internal/social"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Service interface {
	GameTypes() []GameTypeResponse
	StartGame(ctx context.Context, playerID uuid.UUID, gameType string) (*GameResponse, error)
	GetGame(ctx context.Context, playerID, gameID uuid.UUID) (*GameResponse, error)
	NextQuestion(ctx context.Context, playerID, gameID uuid.UUID) (*QuestionResponse, error)
	SubmitAnswer(ctx context.Context, playerID, gameID uuid.UUID, choice string) (*Outcome, error)
	PlayerStats(ctx context.Context, playerID uuid.UUID) (*StatsResponse, error)
}

type Options struct {
	MaxResample  int
	PostLanguage string
}

type service struct {
	db      *gorm.DB
	repo    Repository
	catalog catalog.Catalog
	feed    social.Service
	rng     catalog.Random
	opts    Options
	locks   *keyedMutex
	now     func() time.Time
}

func NewService(db *gorm.DB, repo Repository, cat catalog.Catalog, feed social.Service, rng catalog.Random, opts Options) Service {
	if opts.MaxResample < 1 {
		opts.MaxResample = quiz.DefaultMaxResample
	}
	if opts.PostLanguage == "" {
		opts.PostLanguage = "en"
	}
	return &service{
		db:      db,
		repo:    repo,
		catalog: cat,
		feed:    feed,
		rng:     rng,
		opts:    opts,
		locks:   newKeyedMutex(),
		now:     time.Now,
	}
}

// Recap is the text posted to the player's feed when a game ends.
func Recap(score int, t quiz.GameType) string {
	return fmt.Sprintf("I just scored %d at %s!", score, t.DisplayName())
}

func (s *service) GameTypes() []GameTypeResponse {
	types := make([]GameTypeResponse, 0, len(quiz.AllGameTypes))
	for _, t := range quiz.AllGameTypes {
		types = append(types, GameTypeResponse{GameType: t, DisplayName: t.DisplayName(), Slug: t.Slug()})
	}
	return types
}

func (s *service) StartGame(ctx context.Context, playerID uuid.UUID, gameType string) (*GameResponse, error) {
	log := config.WithContext(ctx)

	t, err := quiz.ParseGameType(gameType)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ID:       uuid.New(),
		PlayerID: playerID,
		GameType: t,
		Score:    0,
		Status:   StatusActive,
	}
	if err := s.repo.Create(ctx, g); err != nil {
		log.WithError(err).Error("Failed to create game")
		return nil, err
	}

	log.WithFields(logrus.Fields{"game_id": g.ID, "game_type": t}).Info("Game started")
	return toResponse(g), nil
}

func (s *service) load(ctx context.Context, playerID, gameID uuid.UUID) (*Game, error) {
	g, err := s.repo.FindByID(ctx, gameID)
	if err != nil {
		if !errors.Is(err, ErrGameNotFound) {
			config.WithContext(ctx).WithError(err).WithField("game_id", gameID).Error("Failed to load game")
		}
		return nil, err
	}
	if g.PlayerID != playerID {
		return nil, ErrNotOwner
	}
	return g, nil
}

func (s *service) GetGame(ctx context.Context, playerID, gameID uuid.UUID) (*GameResponse, error) {
	g, err := s.load(ctx, playerID, gameID)
	if err != nil {
		return nil, err
	}
	return toResponse(g), nil
}

func (s *service) NextQuestion(ctx context.Context, playerID, gameID uuid.UUID) (*QuestionResponse, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"game_id": gameID})

	unlock := s.locks.Lock(gameID)
	defer unlock()

	g, err := s.load(ctx, playerID, gameID)
	if err != nil {
		return nil, err
	}
	if !g.IsLive() {
		return nil, ErrGameOver
	}

	strategy, err := g.GameType.Strategy(s.opts.MaxResample)
	if err != nil {
		return nil, err
	}
	q, err := strategy.Generate(ctx, s.catalog, s.rng)
	if err != nil {
		log.WithError(err).Error("Failed to generate question")
		return nil, err
	}

	ok, err := s.repo.SetPending(ctx, g.ID, g.Round, q.Pending())
	if err != nil {
		log.WithError(err).Error("Failed to store pending question")
		return nil, err
	}
	if !ok {
		return nil, s.conflict(ctx, s.repo, g.ID)
	}

	return &QuestionResponse{
		GameID:      g.ID,
		GameType:    g.GameType,
		SubjectKind: q.SubjectKind,
		SubjectName: q.SubjectName,
		LeftLabel:   q.LeftLabel,
		RightLabel:  q.RightLabel,
		Score:       g.Score,
	}, nil
}

// SubmitAnswer checks choice against the pending question and commits the
// result atomically. A wrong answer ends the game and posts the recap in
// the same transaction.
func (s *service) SubmitAnswer(ctx context.Context, playerID, gameID uuid.UUID, choice string) (*Outcome, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"game_id": gameID})

	unlock := s.locks.Lock(gameID)
	defer unlock()

	g, err := s.load(ctx, playerID, gameID)
	if err != nil {
		return nil, err
	}
	if !g.IsLive() {
		return nil, ErrGameOver
	}

	pending, ok, err := g.Pending()
	if err != nil {
		log.WithError(err).Error("Corrupt pending question")
		return nil, err
	}
	if !ok {
		return nil, ErrNoPendingQuestion
	}

	strategy, err := g.GameType.Strategy(s.opts.MaxResample)
	if err != nil {
		return nil, err
	}
	correct, err := strategy.Check(ctx, s.catalog, pending, choice)
	if err != nil {
		if !errors.Is(err, quiz.ErrInvalidChoice) {
			log.WithError(err).Error("Failed to check answer")
		}
		return nil, err
	}

	if correct {
		return s.recordCorrect(ctx, g)
	}
	return s.end(ctx, g, pending.SubjectID)
}

func (s *service) recordCorrect(ctx context.Context, g *Game) (*Outcome, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		ok, err := repo.RecordCorrect(ctx, g.ID, g.Round)
		if err != nil {
			return err
		}
		if !ok {
			return s.conflict(ctx, repo, g.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Outcome{Result: OutcomeCorrect, Score: g.Score + 1, Status: StatusActive}, nil
}

func (s *service) end(ctx context.Context, g *Game, subjectID int) (*Outcome, error) {
	log := config.WithContext(ctx).WithFields(logrus.Fields{"game_id": g.ID})
	recap := Recap(g.Score, g.GameType)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		ok, err := repo.End(ctx, g.ID, g.Round, s.now())
		if err != nil {
			return err
		}
		if !ok {
			return s.conflict(ctx, repo, g.ID)
		}
		if _, err := s.feed.WithTx(tx).Publish(ctx, g.PlayerID, recap, s.opts.PostLanguage); err != nil {
			return fmt.Errorf("publish recap: %w", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrGameOver) && !errors.Is(err, ErrStaleQuestion) {
			log.WithError(err).Error("Failed to end game")
		}
		return nil, err
	}

	log.WithField("score", g.Score).Info("Game over")
	return &Outcome{
		Result:      OutcomeIncorrect,
		Score:       g.Score,
		Status:      StatusOver,
		Recap:       recap,
		SubjectKind: g.GameType.SubjectKind(),
		SubjectID:   subjectID,
	}, nil
}

// conflict explains why a guarded update matched no row.
func (s *service) conflict(ctx context.Context, repo Repository, id uuid.UUID) error {
	current, err := repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.IsLive() {
		return ErrGameOver
	}
	return ErrStaleQuestion
}

func (s *service) PlayerStats(ctx context.Context, playerID uuid.UUID) (*StatsResponse, error) {
	rows, err := s.repo.StatsByPlayer(ctx, playerID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load player stats")
		return nil, err
	}

	byType := make(map[quiz.GameType]TypeStats, len(rows))
	for _, row := range rows {
		byType[row.GameType] = row
	}

	resp := &StatsResponse{Games: make([]StatsRow, 0, len(quiz.AllGameTypes))}
	for _, t := range quiz.AllGameTypes {
		row := StatsRow{GameType: t, DisplayName: t.DisplayName()}
		if st, ok := byType[t]; ok && st.TimesPlayed > 0 {
			best := st.BestScore
			row.TimesPlayed = st.TimesPlayed
			row.BestScore = &best
		}
		resp.TotalGames += row.TimesPlayed
		resp.Games = append(resp.Games, row)
	}
	return resp, nil
}
