package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/api/handlers"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/auth"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/services"
)

// requireAdmin gates a route behind the stored admin role. It runs after the
// token middleware and re-reads the role from the store on every request, so a
// revocation takes effect on the very next call.
func requireAdmin(users services.UserServiceProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := auth.EmailFrom(r.Context())

			isAdmin, err := users.IsAdmin(r.Context(), email)
			if err != nil {
				log.Error().Err(err).Str("email", email).Msg("Failed to look up role")
				handlers.RespondError(w, http.StatusInternalServerError, "failed to verify role")
				return
			}
			if !isAdmin {
				handlers.RespondError(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
