package main

import (
	"context"
	"log"

	"interviewdeck/internal/config"
	"interviewdeck/internal/repository/postgres"

	"github.com/joho/godotenv"
)

// Standalone migration runner for deployments that apply schema changes
// separately from server startup.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	if err := postgres.RunMigrations(context.Background(), cfg.DatabaseURL); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("migrations applied")
}
