package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/models"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/services"
)

// AdoptionHandler handles HTTP requests for adoption requests.
type AdoptionHandler struct {
	service services.AdoptionServiceProvider
}

// NewAdoptionHandler creates a new AdoptionHandler.
func NewAdoptionHandler(service services.AdoptionServiceProvider) *AdoptionHandler {
	return &AdoptionHandler{service: service}
}

// Mine lists the adoption requests owned by the lister query parameter.
func (h *AdoptionHandler) Mine(w http.ResponseWriter, r *http.Request) {
	adoptions, err := h.service.Mine(r.Context(), r.URL.Query().Get("lister"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list adoptions")
		RespondError(w, http.StatusInternalServerError, "failed to list adoptions")
		return
	}
	RespondJSON(w, http.StatusOK, adoptions)
}

// Create inserts a new adoption request.
func (h *AdoptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var adoption models.Adoption
	if err := json.NewDecoder(r.Body).Decode(&adoption); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Create(r.Context(), adoption)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create adoption")
		RespondError(w, http.StatusInternalServerError, "failed to create adoption")
		return
	}
	RespondJSON(w, http.StatusOK, result)
}

// Update applies the posted fields to the adoption request.
func (h *AdoptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var update bson.M
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Update(r.Context(), id, update)
	if errors.Is(err, services.ErrInvalidID) {
		RespondError(w, http.StatusBadRequest, "invalid adoption id")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("adoption_id", id).Msg("Failed to update adoption")
		RespondError(w, http.StatusInternalServerError, "failed to update adoption")
		return
	}
	RespondJSON(w, http.StatusOK, result)
}
