package services

import (
	"context"

	"interviewdeck/internal/domain/models"
)

// CreateCategoryRequest represents a request to create a category.
type CreateCategoryRequest struct {
	OwnerID string `json:"-"`
	Name    string `json:"name"`
}

// CategoryService defines business logic operations for categories.
type CategoryService interface {
	// CreateCategory creates a category; the caller becomes its owner.
	CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error)

	// ListCategories retrieves the whole catalog annotated with the
	// caller's classification per category.
	ListCategories(ctx context.Context, userID string) ([]models.CategoryView, error)

	// DeleteCategory deletes a category and cascades to its questions and
	// access requests in one transaction. Owner only: GRANTED collaborators
	// may not delete the category.
	DeleteCategory(ctx context.Context, id, userID string) error
}
