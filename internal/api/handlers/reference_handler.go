package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/services"
)

// ReferenceHandler serves the static reference collections.
type ReferenceHandler struct {
	service services.ReferenceServiceProvider
}

// NewReferenceHandler creates a new ReferenceHandler.
func NewReferenceHandler(service services.ReferenceServiceProvider) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

// Categories returns every pet category.
func (h *ReferenceHandler) Categories(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.Categories(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		RespondError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	RespondJSON(w, http.StatusOK, docs)
}

// Encourages returns every encouragement document.
func (h *ReferenceHandler) Encourages(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.Encourages(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list encourages")
		RespondError(w, http.StatusInternalServerError, "failed to list encourages")
		return
	}
	RespondJSON(w, http.StatusOK, docs)
}
