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
	"github.com/nayeem-muttakim/pet-adoption-server/internal/services"
)

// CampaignHandler handles HTTP requests for donation campaigns.
type CampaignHandler struct {
	service services.CampaignServiceProvider
}

// NewCampaignHandler creates a new CampaignHandler.
func NewCampaignHandler(service services.CampaignServiceProvider) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// List returns every campaign, most recently created first.
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.service.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list campaigns")
		RespondError(w, http.StatusInternalServerError, "failed to list campaigns")
		return
	}
	RespondJSON(w, http.StatusOK, campaigns)
}

// Mine lists the campaigns owned by the creator query parameter.
func (h *CampaignHandler) Mine(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.service.Mine(r.Context(), r.URL.Query().Get("creator"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list own campaigns")
		RespondError(w, http.StatusInternalServerError, "failed to list campaigns")
		return
	}
	RespondJSON(w, http.StatusOK, campaigns)
}

// Get retrieves a single campaign by id.
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	campaign, err := h.service.Get(r.Context(), id)
	if errors.Is(err, services.ErrInvalidID) {
		RespondError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		RespondError(w, http.StatusNotFound, "campaign not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("campaign_id", id).Msg("Failed to get campaign")
		RespondError(w, http.StatusInternalServerError, "failed to get campaign")
		return
	}
	RespondJSON(w, http.StatusOK, campaign)
}

// Create inserts a new campaign.
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var campaign models.Campaign
	if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Create(r.Context(), campaign)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create campaign")
		RespondError(w, http.StatusInternalServerError, "failed to create campaign")
		return
	}
	RespondJSON(w, http.StatusOK, result)
}

// Update applies the posted fields to the campaign.
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var update bson.M
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Update(r.Context(), id, update)
	if errors.Is(err, services.ErrInvalidID) {
		RespondError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("campaign_id", id).Msg("Failed to update campaign")
		RespondError(w, http.StatusInternalServerError, "failed to update campaign")
		return
	}
	RespondJSON(w, http.StatusOK, result)
}

// Delete removes the campaign.
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.service.Delete(r.Context(), id)
	if errors.Is(err, services.ErrInvalidID) {
		RespondError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("campaign_id", id).Msg("Failed to delete campaign")
		RespondError(w, http.StatusInternalServerError, "failed to delete campaign")
		return
	}
	RespondJSON(w, http.StatusOK, result)
}
