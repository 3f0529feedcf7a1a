package game_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/vinquiz/internal/auth"
	"github.com/saulo-duarte/vinquiz/internal/game"
	"github.com/saulo-duarte/vinquiz/internal/quiz"
)

func asPlayer(id uuid.UUID, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := auth.ContextWithClaims(r.Context(), &auth.Claims{UserID: id.String(), Role: "player"})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGameHandlers(t *testing.T) {
	f := newFixture(t)
	player := uuid.New()
	h := asPlayer(player, game.Routes(game.NewHandler(f.svc)))

	rec := do(t, h, http.MethodGet, "/types", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var types []game.GameTypeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &types))
	require.Len(t, types, 4)
	assert.Equal(t, "quiz_aoc_region", types[3].Slug)

	rec = do(t, h, http.MethodPost, "/", `{"game_type":"quiz_grape_color"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created game.GameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Grape Color Quiz", created.DisplayName)
	base := "/" + created.ID.String()

	rec = do(t, h, http.MethodPost, base+"/answer", `{"choice":"Red"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/question", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "correct")
	var q game.QuestionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &q))

	rec = do(t, h, http.MethodPost, base+"/answer", `{"choice":"`+wrong(grapeColors[q.SubjectName])+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var outcome game.Outcome
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &outcome))
	assert.Equal(t, game.OutcomeIncorrect, outcome.Result)
	assert.Equal(t, "I just scored 0 at Grape Color Quiz!", outcome.Recap)

	rec = do(t, h, http.MethodPost, base+"/question", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	var over map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &over))
	assert.Equal(t, "/games", over["next"])

	rec = do(t, h, http.MethodGet, "/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats game.StatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalGames)
	assert.Equal(t, quiz.GrapeColorQuiz, stats.Games[0].GameType)
}

func TestGameHandlerErrors(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	h := asPlayer(owner, game.Routes(game.NewHandler(f.svc)))

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"unknown type", http.MethodPost, "/", `{"game_type":"chess"}`, http.StatusBadRequest},
		{"bad body", http.MethodPost, "/", `{`, http.StatusBadRequest},
		{"bad id", http.MethodGet, "/not-a-uuid", "", http.StatusBadRequest},
		{"missing game", http.MethodGet, "/" + uuid.NewString(), "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}

	t.Run("another player's game", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/", `{"game_type":"GRAPE_COLOR_QUIZ"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		var created game.GameResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		intruder := asPlayer(uuid.New(), game.Routes(game.NewHandler(f.svc)))
		rec = do(t, intruder, http.MethodGet, "/"+created.ID.String(), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		bare := game.Routes(game.NewHandler(f.svc))
		rec := do(t, bare, http.MethodGet, "/stats", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
