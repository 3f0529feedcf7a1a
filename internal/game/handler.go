package game

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/vinquiz/internal/auth"
	"github.com/saulo-duarte/vinquiz/internal/catalog"
	"github.com/saulo-duarte/vinquiz/internal/config"
	"github.com/saulo-duarte/vinquiz/internal/quiz"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListTypes godoc
// @Summary  Available quiz types
// @Tags     games
// @Produce  json
// @Success  200 {array} GameTypeResponse
// @Router   /games/types [get]
func (h *Handler) ListTypes(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.GameTypes())
}

// Start godoc
// @Summary  Start a new game
// @Tags     games
// @Accept   json
// @Produce  json
// @Param    body body StartGameDTO true "game type or slug"
// @Success  201 {object} GameResponse
// @Router   /games [post]
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	var dto StartGameDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	game, err := h.service.StartGame(r.Context(), playerID, dto.GameType)
	if err != nil {
		writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, game)
}

// Get godoc
// @Summary  Game state
// @Tags     games
// @Produce  json
// @Param    id path string true "game id"
// @Success  200 {object} GameResponse
// @Router   /games/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}
	gameID, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	game, err := h.service.GetGame(r.Context(), playerID, gameID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, game)
}

// Question godoc
// @Summary  Serve the next question
// @Tags     games
// @Produce  json
// @Param    id path string true "game id"
// @Success  200 {object} QuestionResponse
// @Failure  409 {object} map[string]string
// @Router   /games/{id}/question [post]
func (h *Handler) Question(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}
	gameID, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	question, err := h.service.NextQuestion(r.Context(), playerID, gameID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, question)
}

// Answer godoc
// @Summary  Answer the pending question
// @Tags     games
// @Accept   json
// @Produce  json
// @Param    id   path string    true "game id"
// @Param    body body AnswerDTO true "chosen label"
// @Success  200 {object} Outcome
// @Failure  409 {object} map[string]string
// @Router   /games/{id}/answer [post]
func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}
	gameID, ok := gameIDParam(w, r)
	if !ok {
		return
	}

	var dto AnswerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	outcome, err := h.service.SubmitAnswer(r.Context(), playerID, gameID, dto.Choice)
	if err != nil {
		writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, outcome)
}

// Stats godoc
// @Summary  Games played and best score per quiz type
// @Tags     games
// @Produce  json
// @Success  200 {object} StatsResponse
// @Router   /games/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}

	stats, err := h.service.PlayerStats(r.Context(), playerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, stats)
}

func requirePlayer(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	playerID, err := auth.PlayerIDFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return playerID, true
}

func gameIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrGameNotFound), errors.Is(err, catalog.ErrNotFound):
		config.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrGameOver):
		config.JSON(w, http.StatusConflict, map[string]string{
			"error": err.Error(),
			"next":  "/games",
		})
	case errors.Is(err, ErrNotOwner):
		config.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrStaleQuestion):
		config.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, quiz.ErrInvalidChoice),
		errors.Is(err, quiz.ErrUnknownGameType),
		errors.Is(err, ErrNoPendingQuestion):
		config.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, quiz.ErrEmptyReferenceSet):
		config.Error(w, http.StatusServiceUnavailable, "no question available, try again")
	default:
		config.WithContext(r.Context()).WithError(err).Error("Game request failed")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
