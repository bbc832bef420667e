package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nayeem-muttakim/pet-adoption-server/internal/api"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/auth"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/config"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/database"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/logger"
	"github.com/nayeem-muttakim/pet-adoption-server/internal/services"
)

func main() {
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Set up the shared MongoDB client
	ctx := context.Background()
	db, err := database.Connect(ctx, cfg.MongoURI())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize MongoDB client")
	}
	defer db.Client().Disconnect(ctx)

	// Set up the token service
	tokens := auth.NewTokenService(cfg.TokenSecret)

	// Set up services
	userService := services.NewUserService(db)
	petService := services.NewPetService(db)
	adoptionService := services.NewAdoptionService(db)
	campaignService := services.NewCampaignService(db)
	referenceService := services.NewReferenceService(db)

	// Set up router
	router := api.NewRouter(tokens, userService, petService, adoptionService, campaignService, referenceService)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
