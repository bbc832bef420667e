package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/api/handlers"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/auth"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.TokenService,
	users services.UserServiceProvider,
	pets services.PetServiceProvider,
	adoptions services.AdoptionServiceProvider,
	campaigns services.CampaignServiceProvider,
	reference services.ReferenceServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// The frontend is served from a separate origin, so allow everything.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(tokens)
	userHandler := handlers.NewUserHandler(users)
	petHandler := handlers.NewPetHandler(pets)
	adoptionHandler := handlers.NewAdoptionHandler(adoptions)
	campaignHandler := handlers.NewCampaignHandler(campaigns)
	referenceHandler := handlers.NewReferenceHandler(reference)

	// Public routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello Guys"))
	})
	r.Post("/jwt", authHandler.IssueToken)
	r.Post("/users", userHandler.Register)
	r.Get("/categories", referenceHandler.Categories)
	r.Get("/encourages", referenceHandler.Encourages)

	// Every route below requires a verified bearer token.
	r.Group(func(r chi.Router) {
		r.Use(tokens.Middleware())

		r.Get("/user/admin/{email}", userHandler.AdminStatus)

		r.Get("/pets", petHandler.Search)
		r.Post("/pets", petHandler.Create)
		r.Get("/pets/mine", petHandler.Mine)
		r.Get("/pets/mine/count", petHandler.MineCount)
		r.Get("/pet/{id}", petHandler.Get)
		r.Patch("/pet/{id}", petHandler.Update)
		r.Delete("/pet/{id}", petHandler.Delete)

		r.Get("/pets/adoptions/mine", adoptionHandler.Mine)
		r.Post("/pets/adoptions", adoptionHandler.Create)
		r.Patch("/pets/adoption/{id}", adoptionHandler.Update)

		r.Get("/campaigns", campaignHandler.List)
		r.Get("/campaigns/mine", campaignHandler.Mine)
		r.Post("/campaigns", campaignHandler.Create)
		r.Get("/campaign/{id}", campaignHandler.Get)
		r.Patch("/campaign/{id}", campaignHandler.Update)
		r.Delete("/campaign/{id}", campaignHandler.Delete)

		// Administrative operations re-check the stored role per request.
		r.Group(func(r chi.Router) {
			r.Use(requireAdmin(users))

			r.Get("/users", userHandler.List)
			r.Patch("/users/admin/{id}", userHandler.MakeAdmin)
		})
	})

	return r
}
