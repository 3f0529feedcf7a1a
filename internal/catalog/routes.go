package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/grapes", h.ListGrapes)
	r.Get("/grapes/{id}", h.GetGrape)
	r.Get("/designations", h.ListDesignations)
	r.Get("/designations/{id}", h.GetDesignation)
	return r
}
