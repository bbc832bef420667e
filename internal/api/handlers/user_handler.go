package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/auth"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/models"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/services"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// List returns every registered user. The router gates this behind the admin
// role.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		RespondError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	RespondJSON(w, http.StatusOK, users)
}

// Register inserts the user when the email is not taken yet; a duplicate email
// answers with a null insertedId instead of a second document.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.Register(r.Context(), user)
	if err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("Failed to register user")
		RespondError(w, http.StatusInternalServerError, "failed to register user")
		return
	}
	RespondJSON(w, http.StatusOK, result)
}

// AdminStatus reports whether the caller's own email belongs to an admin. A
// verified user may only query their own email through this path.
func (h *UserHandler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email != auth.EmailFrom(r.Context()) {
		RespondError(w, http.StatusForbidden, "forbidden access")
		return
	}

	isAdmin, err := h.service.IsAdmin(r.Context(), email)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to look up role")
		RespondError(w, http.StatusInternalServerError, "failed to look up role")
		return
	}
	RespondJSON(w, http.StatusOK, map[string]bool{"admin": isAdmin})
}

// MakeAdmin elevates the user with the given id to the admin role.
func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	result, err := h.service.MakeAdmin(r.Context(), id)
	if errors.Is(err, services.ErrInvalidID) {
		RespondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("Failed to elevate user")
		RespondError(w, http.StatusInternalServerError, "failed to elevate user")
		return
	}
	RespondJSON(w, http.StatusOK, result)
}
