package game_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vinquiz/internal/catalog"
	"github.com/saulo-duarte/vinquiz/internal/game"
	"github.com/saulo-duarte/vinquiz/internal/quiz"
	"github.com/saulo-duarte/vinquiz/internal/social"
	"github.com/saulo-duarte/vinquiz/internal/testutil"
)

var grapeColors = map[string]string{
	"Syrah":  quiz.LabelRed,
	"Chenin": quiz.LabelWhite,
}

type fixture struct {
	svc  game.Service
	repo game.Repository
	feed social.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db := testutil.NewDB(t, &game.Game{}, &social.Post{}, &catalog.GrapeVariety{}, &catalog.WineDesignation{})
	catRepo := catalog.NewRepository(db)
	require.NoError(t, catRepo.UpsertGrapes(ctx, []catalog.GrapeVariety{
		{ID: 1, Name: "Syrah", Vineyards: "Vallée du Rhône", Red: true},
		{ID: 2, Name: "Chenin", Vineyards: "Val de Loire"},
	}))
	require.NoError(t, catRepo.UpsertDesignations(ctx, []catalog.WineDesignation{
		{ID: 10, Name: "Cornas", Vineyard: "Vallée du Rhône", StillRed: true},
	}))

	cat := catalog.NewService(catRepo, catalog.NewMemoryCache(time.Minute), 10)
	feed := social.NewService(social.NewRepository(db))
	repo := game.NewRepository(db)
	svc := game.NewService(db, repo, cat, feed, quiz.NewLockedRand(1), game.Options{})

	return &fixture{svc: svc, repo: repo, feed: feed}
}

func wrong(label string) string {
	if label == quiz.LabelRed {
		return quiz.LabelWhite
	}
	return quiz.LabelRed
}

func (f *fixture) answerGrapeColor(t *testing.T, player, gameID uuid.UUID, correct bool) *game.Outcome {
	t.Helper()
	ctx := context.Background()

	q, err := f.svc.NextQuestion(ctx, player, gameID)
	require.NoError(t, err)
	assert.Equal(t, quiz.LabelRed, q.LeftLabel)
	assert.Equal(t, quiz.LabelWhite, q.RightLabel)

	choice := grapeColors[q.SubjectName]
	if !correct {
		choice = wrong(choice)
	}
	outcome, err := f.svc.SubmitAnswer(ctx, player, gameID, choice)
	require.NoError(t, err)
	return outcome
}

func TestFullGameScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	player := uuid.New()

	g, err := f.svc.StartGame(ctx, player, "GRAPE_COLOR_QUIZ")
	require.NoError(t, err)
	assert.Equal(t, 0, g.Score)
	assert.Equal(t, game.StatusActive, g.Status)

	for i := 1; i <= 3; i++ {
		outcome := f.answerGrapeColor(t, player, g.ID, true)
		assert.Equal(t, game.OutcomeCorrect, outcome.Result)
		assert.Equal(t, i, outcome.Score)
		assert.Equal(t, game.StatusActive, outcome.Status)
		assert.Empty(t, outcome.Recap)
	}

	outcome := f.answerGrapeColor(t, player, g.ID, false)
	assert.Equal(t, game.OutcomeIncorrect, outcome.Result)
	assert.Equal(t, 3, outcome.Score)
	assert.Equal(t, game.StatusOver, outcome.Status)
	assert.Equal(t, "I just scored 3 at Grape Color Quiz!", outcome.Recap)
	assert.Equal(t, catalog.KindGrape, outcome.SubjectKind)
	assert.Contains(t, []int{1, 2}, outcome.SubjectID)

	stored, err := f.svc.GetGame(ctx, player, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Score)
	assert.Equal(t, game.StatusOver, stored.Status)
	assert.NotNil(t, stored.EndedAt)

	stats, err := f.svc.PlayerStats(ctx, player)
	require.NoError(t, err)
	require.Len(t, stats.Games, 4)
	assert.Equal(t, quiz.GrapeColorQuiz, stats.Games[0].GameType)
	assert.Equal(t, int64(1), stats.Games[0].TimesPlayed)
	require.NotNil(t, stats.Games[0].BestScore)
	assert.Equal(t, 3, *stats.Games[0].BestScore)
	assert.Equal(t, int64(1), stats.TotalGames)

	posts, err := f.feed.ListByAuthor(ctx, player)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "I just scored 3 at Grape Color Quiz!", posts[0].Body)
	assert.Equal(t, "en", posts[0].Language)
}

func TestTerminalLockout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	player := uuid.New()

	g, err := f.svc.StartGame(ctx, player, "quiz_grape_color")
	require.NoError(t, err)
	f.answerGrapeColor(t, player, g.ID, false)

	_, err = f.svc.NextQuestion(ctx, player, g.ID)
	assert.ErrorIs(t, err, game.ErrGameOver)

	for _, choice := range []string{quiz.LabelRed, quiz.LabelWhite} {
		_, err = f.svc.SubmitAnswer(ctx, player, g.ID, choice)
		assert.ErrorIs(t, err, game.ErrGameOver)
	}

	stored, err := f.svc.GetGame(ctx, player, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Score)

	posts, err := f.feed.ListByAuthor(ctx, player)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestDesignationRedGameEndsOnWhite(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	player := uuid.New()

	g, err := f.svc.StartGame(ctx, player, string(quiz.DesignationColorQuiz))
	require.NoError(t, err)

	q, err := f.svc.NextQuestion(ctx, player, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cornas", q.SubjectName)

	outcome, err := f.svc.SubmitAnswer(ctx, player, g.ID, quiz.LabelRed)
	require.NoError(t, err)
	assert.Equal(t, 1, outcome.Score)

	_, err = f.svc.NextQuestion(ctx, player, g.ID)
	require.NoError(t, err)

	outcome, err = f.svc.SubmitAnswer(ctx, player, g.ID, quiz.LabelWhite)
	require.NoError(t, err)
	assert.Equal(t, game.OutcomeIncorrect, outcome.Result)
	assert.Equal(t, 1, outcome.Score)
	assert.Equal(t, catalog.KindDesignation, outcome.SubjectKind)
	assert.Equal(t, 10, outcome.SubjectID)
	assert.Equal(t, "I just scored 1 at AOC Color Quiz!", outcome.Recap)
}

func TestRegionGame(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	player := uuid.New()

	g, err := f.svc.StartGame(ctx, player, "quiz_aoc_region")
	require.NoError(t, err)

	q, err := f.svc.NextQuestion(ctx, player, g.ID)
	require.NoError(t, err)
	assert.Contains(t, []string{q.LeftLabel, q.RightLabel}, "rhone")
	assert.NotEqual(t, q.LeftLabel, q.RightLabel)

	outcome, err := f.svc.SubmitAnswer(ctx, player, g.ID, "RHONE")
	require.NoError(t, err)
	assert.Equal(t, game.OutcomeCorrect, outcome.Result)
}

func TestAnswerRequiresPendingQuestion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	player := uuid.New()

	g, err := f.svc.StartGame(ctx, player, "GRAPE_COLOR_QUIZ")
	require.NoError(t, err)

	_, err = f.svc.SubmitAnswer(ctx, player, g.ID, quiz.LabelRed)
	assert.ErrorIs(t, err, game.ErrNoPendingQuestion)

	f.answerGrapeColor(t, player, g.ID, true)
	f.answerGrapeColor(t, player, g.ID, true)

	// The answered question cannot be replayed for another point.
	_, err = f.svc.SubmitAnswer(ctx, player, g.ID, quiz.LabelRed)
	assert.ErrorIs(t, err, game.ErrNoPendingQuestion)

	stored, err := f.svc.GetGame(ctx, player, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Score)
	assert.Equal(t, game.StatusActive, stored.Status)
}

func TestInvalidChoiceLeavesGameUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	player := uuid.New()

	g, err := f.svc.StartGame(ctx, player, "GRAPE_COLOR_QUIZ")
	require.NoError(t, err)
	_, err = f.svc.NextQuestion(ctx, player, g.ID)
	require.NoError(t, err)

	_, err = f.svc.SubmitAnswer(ctx, player, g.ID, "Rosé")
	assert.ErrorIs(t, err, quiz.ErrInvalidChoice)

	stored, err := f.svc.GetGame(ctx, player, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Score)
	assert.Equal(t, game.StatusActive, stored.Status)
}

func TestOwnershipAndLookup(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	owner, intruder := uuid.New(), uuid.New()

	g, err := f.svc.StartGame(ctx, owner, "GRAPE_COLOR_QUIZ")
	require.NoError(t, err)

	_, err = f.svc.GetGame(ctx, intruder, g.ID)
	assert.ErrorIs(t, err, game.ErrNotOwner)
	_, err = f.svc.NextQuestion(ctx, intruder, g.ID)
	assert.ErrorIs(t, err, game.ErrNotOwner)
	_, err = f.svc.SubmitAnswer(ctx, intruder, g.ID, quiz.LabelRed)
	assert.ErrorIs(t, err, game.ErrNotOwner)

	_, err = f.svc.GetGame(ctx, owner, uuid.New())
	assert.ErrorIs(t, err, game.ErrGameNotFound)

	_, err = f.svc.StartGame(ctx, owner, "quiz_cheese")
	assert.ErrorIs(t, err, quiz.ErrUnknownGameType)
}

func TestScoreNeverDecreases(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	player := uuid.New()

	g, err := f.svc.StartGame(ctx, player, "GRAPE_COLOR_QUIZ")
	require.NoError(t, err)

	last := 0
	plan := []bool{true, true, false, true, true}
	ended := false
	for _, correct := range plan {
		q, err := f.svc.NextQuestion(ctx, player, g.ID)
		if ended {
			assert.ErrorIs(t, err, game.ErrGameOver)
			continue
		}
		require.NoError(t, err)

		choice := grapeColors[q.SubjectName]
		if !correct {
			choice = wrong(choice)
		}
		outcome, err := f.svc.SubmitAnswer(ctx, player, g.ID, choice)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, outcome.Score, last)
		last = outcome.Score
		ended = outcome.Status == game.StatusOver
	}

	stored, err := f.svc.GetGame(ctx, player, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Score)
}

func TestConcurrentAnswersScoreOnce(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	player := uuid.New()

	g, err := f.svc.StartGame(ctx, player, "GRAPE_COLOR_QUIZ")
	require.NoError(t, err)
	q, err := f.svc.NextQuestion(ctx, player, g.ID)
	require.NoError(t, err)
	choice := grapeColors[q.SubjectName]

	const racers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		correct int
		errs    []error
	)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := f.svc.SubmitAnswer(ctx, player, g.ID, choice)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			if outcome.Result == game.OutcomeCorrect {
				correct++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, correct)
	assert.Len(t, errs, racers-1)
	for _, err := range errs {
		assert.ErrorIs(t, err, game.ErrNoPendingQuestion)
	}

	stored, err := f.svc.GetGame(ctx, player, g.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Score)
}

func TestPlayerStats(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	player := uuid.New()

	t.Run("no games", func(t *testing.T) {
		stats, err := f.svc.PlayerStats(ctx, player)
		require.NoError(t, err)
		require.Len(t, stats.Games, 4)
		for i, row := range stats.Games {
			assert.Equal(t, quiz.AllGameTypes[i], row.GameType)
			assert.Zero(t, row.TimesPlayed)
			assert.Nil(t, row.BestScore)
		}
		assert.Zero(t, stats.TotalGames)
	})

	t.Run("best of several", func(t *testing.T) {
		for _, wins := range []int{2, 0, 1} {
			g, err := f.svc.StartGame(ctx, player, "GRAPE_COLOR_QUIZ")
			require.NoError(t, err)
			for i := 0; i < wins; i++ {
				f.answerGrapeColor(t, player, g.ID, true)
			}
			f.answerGrapeColor(t, player, g.ID, false)
		}
		_, err := f.svc.StartGame(ctx, player, "GRAPE_REGION_QUIZ")
		require.NoError(t, err)

		stats, err := f.svc.PlayerStats(ctx, player)
		require.NoError(t, err)

		assert.Equal(t, int64(3), stats.Games[0].TimesPlayed)
		require.NotNil(t, stats.Games[0].BestScore)
		assert.Equal(t, 2, *stats.Games[0].BestScore)

		assert.Equal(t, int64(1), stats.Games[1].TimesPlayed)
		require.NotNil(t, stats.Games[1].BestScore)
		assert.Equal(t, 0, *stats.Games[1].BestScore)

		assert.Nil(t, stats.Games[2].BestScore)
		assert.Equal(t, int64(4), stats.TotalGames)
	})

	t.Run("other players are excluded", func(t *testing.T) {
		stats, err := f.svc.PlayerStats(ctx, uuid.New())
		require.NoError(t, err)
		assert.Zero(t, stats.TotalGames)
	})
}
