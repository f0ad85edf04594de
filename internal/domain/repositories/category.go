package repositories

import (
	"context"

	"interviewdeck/internal/domain/models"
)

// CategoryRepository defines data access operations for categories.
// Only this repository mutates category rows.
type CategoryRepository interface {
	// Create inserts a category with the given owner.
	Create(ctx context.Context, category *models.Category) error

	// GetByID retrieves a category by ID.
	GetByID(ctx context.Context, id string) (*models.Category, error)

	// ListForUser retrieves every category annotated with the caller's
	// classification projection, ordered by name.
	ListForUser(ctx context.Context, userID string) ([]models.CategoryView, error)

	// Delete removes the category row. The service wraps this in a
	// transaction together with the dependent-row deletes.
	Delete(ctx context.Context, id string) error
}
