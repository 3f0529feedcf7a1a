package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/types", h.ListTypes)
	r.Get("/stats", h.Stats)
	r.Post("/", h.Start)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/question", h.Question)
	r.Post("/{id}/answer", h.Answer)

	return r
}
