package repositories

import (
	"context"

	"interviewdeck/internal/domain/models"
)

// UserRepository defines data access operations for users.
type UserRepository interface {
	// Create inserts a user. Returns a ConflictError if the email is taken.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// GetByEmail retrieves a user by email, for login.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
