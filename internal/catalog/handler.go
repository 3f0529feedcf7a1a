package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/vinquiz/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListGrapes(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	page, err := pageParam(r)
	if err != nil {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}

	grapes, err := h.service.ListGrapes(r.Context(), page)
	if err != nil {
		log.WithError(err).Error("Failed to list grapes")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, grapes)
}

func (h *Handler) GetGrape(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	card, err := h.service.GrapeCard(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "grape not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load grape card")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, card)
}

func (h *Handler) ListDesignations(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	page, err := pageParam(r)
	if err != nil {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}

	designations, err := h.service.ListDesignations(r.Context(), page)
	if err != nil {
		log.WithError(err).Error("Failed to list designations")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, designations)
}

func (h *Handler) GetDesignation(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	card, err := h.service.DesignationCard(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "designation not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load designation card")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, card)
}

func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	return strconv.Atoi(raw)
}
