package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"interviewdeck/internal/auth"
	"interviewdeck/internal/authz"
	"interviewdeck/internal/config"
	"interviewdeck/internal/domain/services"
	"interviewdeck/internal/repository/postgres"
	"interviewdeck/internal/seed"
	"interviewdeck/internal/service"

	"github.com/joho/godotenv"
)

// Seeds the database with the embedded starter catalog, owned by a
// dedicated library account.
func main() {
	ownerEmail := flag.String("owner-email", "library@interviewdeck.local", "Email of the account that will own the seeded categories")
	ownerPassword := flag.String("owner-password", "", "Password for the library account (required on first run)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()

	// Guard against polluting production catalogs
	if cfg.Environment == "prod" {
		log.Fatal("refusing to seed in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()

	if err := postgres.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tokenService, err := auth.NewLocalTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	if err != nil {
		log.Fatalf("Failed to create token service: %v", err)
	}

	repoConfig := &postgres.RepositoryConfig{Pool: pool, Logger: logger}
	userRepo := postgres.NewUserRepository(repoConfig)
	categoryRepo := postgres.NewCategoryRepository(repoConfig)
	questionRepo := postgres.NewQuestionRepository(repoConfig)
	requestRepo := postgres.NewAccessRequestRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)
	authorizer := authz.NewEngine(requestRepo)

	userService := service.NewUserService(userRepo, tokenService, logger)
	categoryService := service.NewCategoryService(categoryRepo, questionRepo, requestRepo, authorizer, txManager, logger)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, authorizer, logger)

	// Resolve or create the library account
	owner, err := userRepo.GetByEmail(ctx, *ownerEmail)
	if err != nil {
		if *ownerPassword == "" {
			log.Fatal("--owner-password is required when the library account does not exist yet")
		}
		result, signupErr := userService.Signup(ctx, &services.SignupRequest{
			Email:     *ownerEmail,
			Password:  *ownerPassword,
			FirstName: "Question",
			LastName:  "Library",
		})
		if signupErr != nil {
			log.Fatalf("Failed to create library account: %v", signupErr)
		}
		owner = result.User
	}

	catalog, err := seed.Load()
	if err != nil {
		log.Fatalf("Failed to load seed catalog: %v", err)
	}

	for _, c := range catalog.Categories {
		category, err := categoryService.CreateCategory(ctx, &services.CreateCategoryRequest{
			OwnerID: owner.ID,
			Name:    c.Name,
		})
		if err != nil {
			log.Fatalf("Failed to seed category %q: %v", c.Name, err)
		}

		for _, q := range c.Questions {
			_, err := questionService.CreateQuestion(ctx, &services.CreateQuestionRequest{
				UserID:     owner.ID,
				CategoryID: category.ID,
				Question:   q.Question,
				Answer:     q.Answer,
				Context:    q.Context,
				Difficulty: q.Difficulty,
			})
			if err != nil {
				log.Fatalf("Failed to seed question in %q: %v", c.Name, err)
			}
		}

		logger.Info("seeded category", "name", c.Name, "questions", len(c.Questions))
	}

	log.Println("seed complete")
}
