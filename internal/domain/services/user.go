package services

import (
	"context"

	"interviewdeck/internal/domain/models"
)

// SignupRequest represents a request to create an account.
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// LoginRequest represents a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned by signup and login: the user plus a signed token.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// UserService defines account operations.
type UserService interface {
	// Signup creates an account and returns a token for it.
	Signup(ctx context.Context, req *SignupRequest) (*AuthResult, error)

	// Login verifies credentials and returns a token.
	// Returns ErrUnauthorized on unknown email or wrong password.
	Login(ctx context.Context, req *LoginRequest) (*AuthResult, error)

	// GetUser retrieves a user's profile.
	GetUser(ctx context.Context, id string) (*models.User, error)
}
