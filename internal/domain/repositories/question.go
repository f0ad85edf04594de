package repositories

import (
	"context"

	"interviewdeck/internal/domain/models"
)

// QuestionRepository defines data access operations for questions.
type QuestionRepository interface {
	// Create inserts a question.
	Create(ctx context.Context, question *models.Question) error

	// GetByID retrieves a question by ID.
	GetByID(ctx context.Context, id string) (*models.Question, error)

	// List retrieves questions, newest first. An empty categoryID lists
	// the whole catalog.
	List(ctx context.Context, categoryID string) ([]models.Question, error)

	// Update rewrites a question's fields and bumps updated_at.
	Update(ctx context.Context, question *models.Question) error

	// Delete removes a question.
	Delete(ctx context.Context, id string) error

	// DeleteByCategory removes all questions in a category, as part of the
	// category delete cascade.
	DeleteByCategory(ctx context.Context, categoryID string) error
}
