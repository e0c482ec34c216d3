package main

import (
	"context"
	"log"
	"net/http"

	"Streamsphere/config"
	"Streamsphere/database"
	"Streamsphere/handlers"
	"Streamsphere/metrics"
	appmiddleware "Streamsphere/middleware"
	"Streamsphere/services"
	sharedlogger "Streamsphere/shared/logger"
	sharedmiddleware "Streamsphere/shared/middleware"
	sharedserver "Streamsphere/shared/server"
	"Streamsphere/telemetry"

	"github.com/go-chi/chi/v5"
)

func main() {
	cfg := config.Load()
	sharedlogger.Init(cfg.Environment, cfg.Debug)

	log.Printf("Initializing StreamSphere components...")

	if err := telemetry.Init(cfg.SentryDSN, cfg.Environment); err != nil {
		log.Printf("Warning: Sentry init failed: %v", err)
	}
	defer telemetry.Flush()

	services.InitSessionStore(cfg)

	if err := database.Connect(cfg); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	if err := database.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	tmdb := services.NewTMDB(cfg)
	resolver := services.NewResolver(tmdb, cfg.EmbedURLOverride)

	presigner, err := services.NewPresigner(context.Background(), cfg)
	if err != nil {
		log.Printf("Warning: Failed to initialize S3 presigner: %v", err)
	}

	handlers.Init(cfg, tmdb, resolver, presigner)

	r := chi.NewRouter()
	r.Use(sharedmiddleware.Logging)
	r.Use(metrics.Middleware)

	// Public routes
	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	r.Handle("/metrics", metrics.Handler())
	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Login required", http.StatusUnauthorized)
	})
	r.Post("/api/register", handlers.RegisterHandler)
	r.Post("/api/login", handlers.LoginHandler)
	r.Post("/api/logout", handlers.LogoutHandler)
	r.Post("/api/reset/request", handlers.RequestResetHandler)
	r.Post("/api/reset/confirm", handlers.ConfirmResetHandler)
	r.Get("/api/movies/public", handlers.PublicMoviesHandler)
	r.Post("/api/s3/presign", handlers.PresignHandler)

	// Explorer and player require an authenticated session
	r.Group(func(pr chi.Router) {
		pr.Use(appmiddleware.RequireAuth)
		pr.Get("/api/explorer/genres", handlers.GenresHandler)
		pr.Get("/api/explorer/trending", handlers.TrendingHandler)
		pr.Get("/api/explorer/browse", handlers.BrowseHandler)
		pr.Get("/api/player/movie/{id}", handlers.MoviePlayerHandler)
		pr.Post("/api/player/upload", handlers.UploadPlayerHandler)
	})

	// Creator uploads require the creator role
	r.With(appmiddleware.RequireCreator).Post("/api/movies", handlers.CreateMovieHandler)

	addr := ":" + cfg.ServerPort
	log.Printf("=========================================")
	log.Printf("StreamSphere is starting on %s", addr)
	log.Printf("Environment: %s", cfg.Environment)
	log.Printf("Debug Mode: %v", cfg.Debug)
	log.Printf("=========================================")

	server := sharedserver.CreateServer(sharedserver.DefaultConfig(addr), r)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("FATAL: Server failed to start: %v", err)
	}
}
