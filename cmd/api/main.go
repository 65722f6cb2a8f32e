package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/foundit/foundit-api/internal/config"
	"github.com/foundit/foundit-api/internal/domain/auth"
	"github.com/foundit/foundit-api/internal/domain/moderation"
	"github.com/foundit/foundit-api/internal/domain/report"
	"github.com/foundit/foundit-api/internal/domain/upload"
	"github.com/foundit/foundit-api/internal/domain/user"
	"github.com/foundit/foundit-api/internal/middleware"
	"github.com/foundit/foundit-api/internal/pkg/database"
	"github.com/foundit/foundit-api/internal/pkg/imaging"
	"github.com/foundit/foundit-api/internal/pkg/jwt"
	"github.com/foundit/foundit-api/internal/pkg/logger"
	pkgresponse "github.com/foundit/foundit-api/internal/pkg/response"
	"github.com/foundit/foundit-api/internal/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Setup(cfg.Env, cfg.LogLevel)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting FoundIt API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redis, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redis)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	store := newStorage(cfg)

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	reportRepo := report.NewRepository(db)
	flagRepo := moderation.NewRepository(db)

	// ---------- Services ----------
	authService := auth.NewService(userRepo, jwtService, redis)
	uploadService := upload.NewService(store, imaging.NewProcessor(), cfg.MaxUploadBytes)
	reportService := report.NewService(reportRepo, uploadService)
	moderationService := moderation.NewService(flagRepo, reportRepo)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userRepo)
	reportHandler := report.NewHandler(reportService)
	moderationHandler := moderation.NewHandler(moderationService)
	uploadHandler := upload.NewHandler(uploadService, cfg.MaxUploadBytes)

	requireAuth := middleware.Auth(jwtService)
	optionalAuth := middleware.OptionalAuth(jwtService)
	requireAdmin := middleware.RequireAdmin()

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	if _, ok := store.(*storage.LocalStorage); ok {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.LocalPath)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(requireAuth))

		r.Route("/reports", func(r chi.Router) {
			report.Routes(r, reportHandler, optionalAuth, requireAuth)
			moderation.Routes(r, moderationHandler, optionalAuth, requireAuth, requireAdmin)
		})

		user.Routes(r, userHandler, jwtService)

		r.Group(func(r chi.Router) {
			r.Use(optionalAuth)
			r.Post("/upload", uploadHandler.Upload)
		})
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// newStorage picks S3 when credentials are configured and falls back
// to local disk for development
func newStorage(cfg *config.Config) storage.Storage {
	if cfg.S3AccessKey != "" {
		s3Store, err := storage.NewS3Storage(storage.Config{
			S3Endpoint:  cfg.S3Endpoint,
			S3Region:    cfg.S3Region,
			S3AccessKey: cfg.S3AccessKey,
			S3SecretKey: cfg.S3SecretKey,
			S3Bucket:    cfg.S3Bucket,
			PublicURL:   cfg.PublicURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize S3 storage")
		}
		return s3Store
	}

	baseURL := cfg.PublicURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Port + "/uploads"
	}
	localStore, err := storage.NewLocalStorage(cfg.LocalPath, baseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize local storage")
	}
	return localStore
}
