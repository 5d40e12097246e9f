package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tunerec/internal/auth"
	"tunerec/internal/config"
	"tunerec/internal/handlers"
	"tunerec/internal/models"
	"tunerec/internal/repositories"
	"tunerec/internal/services"
)

func main() {
	// Load .env file for local development
	_ = godotenv.Load()

	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := models.NewDatabase(ctx, cfg.MongodbURL, cfg.MongodbDatabase)
	cancel()
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close(context.Background())

	if err := db.CreateIndexes(context.Background()); err != nil {
		slog.Error("Failed to create indexes", "error", err)
		os.Exit(1)
	}

	// Wire repositories and services
	preferenceRepo := repositories.NewMongoPreferenceRepository(db)
	catalog := services.NewCatalogClient(services.CatalogClientConfig{
		BaseURL:      cfg.CatalogURL,
		ClientID:     cfg.CatalogClientID,
		ClientSecret: cfg.CatalogClientSecret,
		TokenURL:     cfg.CatalogTokenURL,
		Timeout:      cfg.CatalogTimeoutDuration(),
	})
	preferenceService := services.NewPreferenceService(preferenceRepo, catalog)
	recommendationService := services.NewRecommendationService(preferenceRepo, catalog)

	// Set up the router
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(auth.Middleware(auth.NewTokenService(cfg.JWTSecret), cfg.ServiceToken))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.NewPreferenceHandler(preferenceService).RegisterRoutes(router)
	handlers.NewRecommendationHandler(recommendationService).RegisterRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Forced shutdown", "error", err)
	}
}
