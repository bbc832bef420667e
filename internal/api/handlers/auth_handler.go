package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/auth"
)

// AuthHandler issues identity tokens.
type AuthHandler struct {
	tokens *auth.TokenService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// IssueToken signs the posted identity claim and returns the compact token.
// The claim is passed through untouched; it must at least carry the email the
// protected routes key on.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var claim map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&claim); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.tokens.Issue(claim)
	if err != nil {
		log.Error().Err(err).Msg("Failed to sign token")
		RespondError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"token": token})
}
