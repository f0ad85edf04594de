package config

import (
	"os"
	"time"
)

// AuthMode selects how bearer tokens are verified.
const (
	// AuthModeLocal verifies HS256 tokens issued by this service.
	AuthModeLocal = "local"
	// AuthModeJWKS verifies RS256/ES256 tokens against an external
	// identity provider's JWKS endpoint.
	AuthModeJWKS = "jwks"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string

	// Auth
	AuthMode  string
	JWTSecret string
	JWKSURL   string
	TokenTTL  time.Duration
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		AuthMode:    getEnv("AUTH_MODE", AuthModeLocal),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWKSURL:     getEnv("JWKS_URL", ""),
		TokenTTL:    getDuration("TOKEN_TTL", 24*time.Hour),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
