package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/models"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/query"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/services"
)

// PetHandler handles HTTP requests for pet listings.
type PetHandler struct {
	service services.PetServiceProvider
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service services.PetServiceProvider) *PetHandler {
	return &PetHandler{service: service}
}

// Search lists pets matching the optional search text and category, most
// recently listed first.
func (h *PetHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pets, err := h.service.Search(r.Context(), q.Get("search"), q.Get("category"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to search pets")
		RespondError(w, http.StatusInternalServerError, "failed to search pets")
		return
	}
	RespondJSON(w, http.StatusOK, pets)
}

// Mine pages through the caller's own listings. Page is 1-based; page and size
// must both be supplied or the page comes back empty.
func (h *PetHandler) Mine(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	skip, limit := query.Page(q.Get("page"), q.Get("size"))

	pets, err := h.service.Mine(r.Context(), q.Get("lister_email"), skip, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list own pets")
		RespondError(w, http.StatusInternalServerError, "failed to list pets")
		return
	}
	RespondJSON(w, http.StatusOK, pets)
}

// MineCount returns the caller's full set of listings without pagination so
// the client can measure its length.
func (h *PetHandler) MineCount(w http.ResponseWriter, r *http.Request) {
	pets, err := h.service.MineAll(r.Context(), r.URL.Query().Get("lister_email"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to count own pets")
		RespondError(w, http.StatusInternalServerError, "failed to list pets")
		return
	}
	RespondJSON(w, http.StatusOK, pets)
}

// Get retrieves a single listing by id.
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pet, err := h.service.Get(r.Context(), id)
	if errors.Is(err, services.ErrInvalidID) {
		RespondError(w, http.StatusBadRequest, "invalid pet id")
		return
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		RespondError(w, http.StatusNotFound, "pet not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("pet_id", id).Msg("Failed to get pet")
		RespondError(w, http.StatusInternalServerError, "failed to get pet")
		return
	}
	RespondJSON(w, http.StatusOK, pet)
}

// Create inserts a new listing.
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var pet models.Pet
	if err := json.NewDecoder(r.Body).Decode(&pet); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Create(r.Context(), pet)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create pet")
		RespondError(w, http.StatusInternalServerError, "failed to create pet")
		return
	}
	RespondJSON(w, http.StatusOK, result)
}

// Update applies the posted fields to the listing.
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var update bson.M
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Update(r.Context(), id, update)
	if errors.Is(err, services.ErrInvalidID) {
		RespondError(w, http.StatusBadRequest, "invalid pet id")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("pet_id", id).Msg("Failed to update pet")
		RespondError(w, http.StatusInternalServerError, "failed to update pet")
		return
	}
	RespondJSON(w, http.StatusOK, result)
}

// Delete removes the listing.
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.service.Delete(r.Context(), id)
	if errors.Is(err, services.ErrInvalidID) {
		RespondError(w, http.StatusBadRequest, "invalid pet id")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("pet_id", id).Msg("Failed to delete pet")
		RespondError(w, http.StatusInternalServerError, "failed to delete pet")
		return
	}
	RespondJSON(w, http.StatusOK, result)
}
