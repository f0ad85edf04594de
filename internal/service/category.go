package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"interviewdeck/internal/domain"
	"interviewdeck/internal/domain/models"
	"interviewdeck/internal/domain/repositories"
	"interviewdeck/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// categoryService implements the CategoryService interface
type categoryService struct {
	categoryRepo repositories.CategoryRepository
	questionRepo repositories.QuestionRepository
	requestRepo  repositories.AccessRequestRepository
	authorizer   services.CategoryAuthorizer
	txManager    repositories.TransactionManager
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepository,
	questionRepo repositories.QuestionRepository,
	requestRepo repositories.AccessRequestRepository,
	authorizer services.CategoryAuthorizer,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) services.CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
		requestRepo:  requestRepo,
		authorizer:   authorizer,
		txManager:    txManager,
		logger:       logger,
	}
}

// CreateCategory creates a category owned by the caller
func (s *categoryService) CreateCategory(ctx context.Context, req *services.CreateCategoryRequest) (*models.Category, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	category := &models.Category{
		ID:      uuid.NewString(),
		Name:    strings.TrimSpace(req.Name),
		OwnerID: req.OwnerID,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.logger.Info("category created",
		"id", category.ID,
		"name", category.Name,
		"owner_id", category.OwnerID,
	)

	return category, nil
}

// ListCategories retrieves the catalog annotated per caller
func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]models.CategoryView, error) {
	return s.categoryRepo.ListForUser(ctx, userID)
}

// DeleteCategory deletes a category and its dependents in one transaction.
// Only the owner may delete; GRANTED collaborators are refused. The cascade
// removes questions and access requests before the category row so no
// reader ever observes orphaned dependents.
func (s *categoryService) DeleteCategory(ctx context.Context, id, userID string) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if category.OwnerID != userID {
		return fmt.Errorf("only the owner may delete category %s: %w", id, domain.ErrForbidden)
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.questionRepo.DeleteByCategory(txCtx, id); err != nil {
			return err
		}
		if err := s.requestRepo.DeleteByCategory(txCtx, id); err != nil {
			return err
		}
		return s.categoryRepo.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info("category deleted",
		"id", id,
		"owner_id", userID,
	)

	return nil
}

func (s *categoryService) validateCreateRequest(req *services.CreateCategoryRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.OwnerID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}
