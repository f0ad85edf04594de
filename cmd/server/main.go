package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"interviewdeck/internal/auth"
	"interviewdeck/internal/authz"
	"interviewdeck/internal/config"
	"interviewdeck/internal/handler"
	"interviewdeck/internal/middleware"
	"interviewdeck/internal/obs"
	"interviewdeck/internal/repository/postgres"
	"interviewdeck/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"auth_mode", cfg.AuthMode,
	)

	ctx := context.Background()

	// Apply migrations before serving traffic
	if err := postgres.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create pgx connection pool
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Token issuance is always local; verification follows AUTH_MODE
	tokenService, err := auth.NewLocalTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	var verifier auth.TokenVerifier = tokenService
	if cfg.AuthMode == config.AuthModeJWKS {
		verifier, err = auth.NewJWKSVerifier(cfg.JWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWKS verifier: %v", err)
		}
	}
	defer verifier.Close()

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	categoryRepo := postgres.NewCategoryRepository(repoConfig)
	questionRepo := postgres.NewQuestionRepository(repoConfig)
	requestRepo := postgres.NewAccessRequestRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Authorization engine: recomputes classification from store state on
	// every call
	authorizer := authz.NewEngine(requestRepo)

	// Create services
	userService := service.NewUserService(userRepo, tokenService, logger)
	categoryService := service.NewCategoryService(categoryRepo, questionRepo, requestRepo, authorizer, txManager, logger)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, authorizer, logger)
	accessService := service.NewAccessService(requestRepo, categoryRepo, logger)

	// Create handlers
	authHandler := handler.NewAuthHandler(userService, logger)
	categoryHandler := handler.NewCategoryHandler(categoryService, logger)
	questionHandler := handler.NewQuestionHandler(questionService, logger)
	accessHandler := handler.NewAccessHandler(accessService, logger)

	logger.Info("services initialized")

	// Register metrics
	obs.Init()

	// Public routes
	public := http.NewServeMux()
	public.HandleFunc("GET /health", handler.HealthCheck)
	public.Handle("GET /metrics", obs.Handler())
	public.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	public.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes (Go 1.22+ method patterns)
	api := http.NewServeMux()
	api.HandleFunc("GET /api/users/me", authHandler.Me)

	api.HandleFunc("GET /api/categories", categoryHandler.ListCategories)
	api.HandleFunc("POST /api/categories", categoryHandler.CreateCategory)
	api.HandleFunc("DELETE /api/categories/{id}", categoryHandler.DeleteCategory)

	api.HandleFunc("POST /api/categories/{id}/request-access", accessHandler.RequestAccess)
	api.HandleFunc("GET /api/categories/{id}/requests", accessHandler.ListRequests)
	api.HandleFunc("POST /api/categories/{id}/requests/{requestID}/respond", accessHandler.Respond)

	api.HandleFunc("GET /api/questions", questionHandler.ListQuestions)
	api.HandleFunc("POST /api/questions", questionHandler.CreateQuestion)
	api.HandleFunc("PUT /api/questions/{id}", questionHandler.UpdateQuestion)
	api.HandleFunc("DELETE /api/questions/{id}", questionHandler.DeleteQuestion)

	// Mount the authenticated mux behind the auth middleware
	mux := http.NewServeMux()
	mux.Handle("/api/", middleware.AuthMiddleware(verifier)(api))
	mux.Handle("/api/auth/", public)
	mux.Handle("/health", public)
	mux.Handle("/metrics", public)

	// Build middleware chain: CORS -> metrics -> recovery -> routes
	var root http.Handler = mux
	root = middleware.Recovery(logger)(root)
	root = obs.Instrument(root)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
