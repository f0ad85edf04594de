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

// questionService implements the QuestionService interface. Every mutation
// resolves the question's category and passes the caller through the write
// gate before touching the store.
type questionService struct {
	questionRepo repositories.QuestionRepository
	categoryRepo repositories.CategoryRepository
	authorizer   services.CategoryAuthorizer
	logger       *slog.Logger
}

// NewQuestionService creates a new question service
func NewQuestionService(
	questionRepo repositories.QuestionRepository,
	categoryRepo repositories.CategoryRepository,
	authorizer services.CategoryAuthorizer,
	logger *slog.Logger,
) services.QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		authorizer:   authorizer,
		logger:       logger,
	}
}

// CreateQuestion adds a question after the write gate passes
func (s *questionService) CreateQuestion(ctx context.Context, req *services.CreateQuestionRequest) (*models.Question, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	category, err := s.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizer.AuthorizeWrite(ctx, req.UserID, category); err != nil {
		return nil, err
	}

	question := &models.Question{
		ID:         uuid.NewString(),
		CategoryID: category.ID,
		Question:   strings.TrimSpace(req.Question),
		Answer:     req.Answer,
		Context:    req.Context,
		Difficulty: req.Difficulty,
	}

	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	s.logger.Info("question created",
		"id", question.ID,
		"category_id", category.ID,
		"user_id", req.UserID,
	)

	return question, nil
}

// ListQuestions retrieves questions; the catalog is globally readable
func (s *questionService) ListQuestions(ctx context.Context, categoryID string) ([]models.Question, error) {
	return s.questionRepo.List(ctx, categoryID)
}

// UpdateQuestion rewrites a question after the write gate passes
func (s *questionService) UpdateQuestion(ctx context.Context, id string, req *services.UpdateQuestionRequest) (*models.Question, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(ctx, question.CategoryID)
	if err != nil {
		return nil, err
	}

	if err := s.authorizer.AuthorizeWrite(ctx, req.UserID, category); err != nil {
		return nil, err
	}

	question.Question = strings.TrimSpace(req.Question)
	question.Answer = req.Answer
	question.Context = req.Context
	question.Difficulty = req.Difficulty

	if err := s.questionRepo.Update(ctx, question); err != nil {
		return nil, err
	}

	s.logger.Info("question updated",
		"id", question.ID,
		"category_id", category.ID,
		"user_id", req.UserID,
	)

	return question, nil
}

// DeleteQuestion removes a question after the write gate passes. Any OWNER
// or GRANTED collaborator may delete any question in the category.
func (s *questionService) DeleteQuestion(ctx context.Context, id, userID string) error {
	question, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	category, err := s.categoryRepo.GetByID(ctx, question.CategoryID)
	if err != nil {
		return err
	}

	if err := s.authorizer.AuthorizeWrite(ctx, userID, category); err != nil {
		return err
	}

	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("question deleted",
		"id", id,
		"category_id", category.ID,
		"user_id", userID,
	)

	return nil
}

func (s *questionService) validateCreateRequest(req *services.CreateQuestionRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.CategoryID, validation.Required),
		validation.Field(&req.Question, validation.Required, validation.By(notBlank)),
		validation.Field(&req.Difficulty, validation.Required, validation.In(models.Difficulties...)),
	)
}

func (s *questionService) validateUpdateRequest(req *services.UpdateQuestionRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Question, validation.Required, validation.By(notBlank)),
		validation.Field(&req.Difficulty, validation.Required, validation.In(models.Difficulties...)),
	)
}

// notBlank rejects strings that are empty after trimming
func notBlank(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}
