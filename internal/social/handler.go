package social

import (
	"net/http"

	"github.com/saulo-duarte/vinquiz/internal/auth"
	"github.com/saulo-duarte/vinquiz/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListMine godoc
// @Summary  List the caller's posts, newest first
// @Tags     posts
// @Produce  json
// @Success  200 {array} PostResponse
// @Router   /posts/me [get]
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	playerID, err := auth.PlayerIDFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	posts, err := h.service.ListByAuthor(r.Context(), playerID)
	if err != nil {
		log.WithError(err).Error("Failed to list posts")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, posts)
}
