package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/vinquiz/internal/auth"
	"github.com/saulo-duarte/vinquiz/internal/config"
)

type Handler struct {
	service      Service
	cookieDomain string
	cookieMaxAge int
}

func NewHandler(service Service, cookieDomain string, cookieMaxAge int) *Handler {
	return &Handler{service: service, cookieDomain: cookieDomain, cookieMaxAge: cookieMaxAge}
}

// Register godoc
// @Summary  Create a player and issue its session token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body RegisterDTO true "player"
// @Success  201 {object} AuthResponse
// @Router   /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidUsername):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrUsernameTaken):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	auth.SetSessionCookie(w, resp.Token, h.cookieDomain, h.cookieMaxAge)
	config.JSON(w, http.StatusCreated, resp)
}

// GetUser godoc
// @Summary  Current player
// @Tags     users
// @Produce  json
// @Success  200 {object} UserResponse
// @Router   /users/me [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := auth.PlayerIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}
