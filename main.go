package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	database "github.com/sahyaatra/sahyaatra-api/app/db"
	appLogger "github.com/sahyaatra/sahyaatra-api/app/logger"
	"github.com/sahyaatra/sahyaatra-api/app/observability/metrics"
	"github.com/sahyaatra/sahyaatra-api/app/tracer"
	"github.com/sahyaatra/sahyaatra-api/config"
	"github.com/sahyaatra/sahyaatra-api/internal/api/assistant"
	"github.com/sahyaatra/sahyaatra-api/internal/api/auth"
	"github.com/sahyaatra/sahyaatra-api/internal/api/generative"
	"github.com/sahyaatra/sahyaatra-api/internal/api/images"
	"github.com/sahyaatra/sahyaatra-api/internal/api/itinerary"
	"github.com/sahyaatra/sahyaatra-api/internal/api/trips"
	"github.com/sahyaatra/sahyaatra-api/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracer.InitTracingAndMetrics()
	metrics.InitAppMetrics()

	// --- Database ---
	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Error("Failed to generate database config", slog.Any("error", err))
		os.Exit(1)
	}
	if err = database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
		logger.Error("Failed to run database migrations", slog.Any("error", err))
		os.Exit(1)
	}
	pool, err := database.Init(dbConfig.ConnectionURL, logger)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if !database.WaitForDB(ctx, pool, logger) {
		logger.Error("Database not ready after waiting, exiting.")
		os.Exit(1)
	}

	// --- AI client ---
	aiClient, err := generative.NewAIClient(ctx)
	if err != nil {
		logger.Error("Failed to initialize AI client", slog.Any("error", err))
		os.Exit(1)
	}

	// --- Services and handlers ---
	authRepo := auth.NewRepository(pool, logger)
	authService := auth.NewServiceImpl(authRepo, cfg.JWT, logger)
	authHandler := auth.NewHandler(authService, logger)

	itineraryService := itinerary.NewServiceImpl(aiClient, logger)
	itineraryHandler := itinerary.NewHandler(itineraryService, logger)

	unsplashClient := images.NewClient(cfg.Unsplash.BaseURL, os.Getenv("UNSPLASH_ACCESS_KEY"), logger)
	imageService := images.NewServiceImpl(unsplashClient, images.NewCache(), logger)
	imageHandler := images.NewHandler(imageService, logger)

	assistantService := assistant.NewServiceImpl(aiClient, logger)
	assistantHandler := assistant.NewHandler(assistantService, imageService, logger)

	tripRepo := trips.NewRepository(pool, logger)
	tripService := trips.NewServiceImpl(tripRepo, logger)
	tripHandler := trips.NewHandler(tripService, logger)

	apiRouter := router.SetupRouter(&router.Config{
		AuthHandler:            authHandler,
		ItineraryHandler:       itineraryHandler,
		AssistantHandler:       assistantHandler,
		ImageHandler:           imageHandler,
		TripHandler:            tripHandler,
		AuthenticateMiddleware: auth.Authenticate(logger, cfg.JWT),
	})

	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(appLogger.StructuredLogger(logger))
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(middleware.Timeout(cfg.Server.Timeout))
	mux.Use(middleware.Compress(5, "application/json"))
	mux.Mount("/", apiRouter)

	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}
	logger.Info("Application shut down complete.")
}

// setupLogger configures colored logs in development and JSON elsewhere.
func setupLogger() *slog.Logger {
	env := os.Getenv("APP_ENV")
	if env == "development" || env == "" {
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		return slog.New(tint.NewHandler(os.Stdout, tintOpts))
	}
	jsonOpts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
}
