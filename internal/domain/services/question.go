package services

import (
	"context"

	"interviewdeck/internal/domain/models"
)

// CreateQuestionRequest represents a request to add a question.
type CreateQuestionRequest struct {
	UserID     string `json:"-"`
	CategoryID string `json:"category_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Context    string `json:"context"`
	Difficulty string `json:"difficulty"`
}

// UpdateQuestionRequest represents a request to rewrite a question.
type UpdateQuestionRequest struct {
	UserID     string `json:"-"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Context    string `json:"context"`
	Difficulty string `json:"difficulty"`
}

// QuestionService defines business logic operations for questions. Every
// mutation passes through the category write gate first.
type QuestionService interface {
	// CreateQuestion adds a question to a category the user may write to.
	CreateQuestion(ctx context.Context, req *CreateQuestionRequest) (*models.Question, error)

	// ListQuestions retrieves questions, optionally filtered by category.
	// The catalog is globally readable; no gate applies.
	ListQuestions(ctx context.Context, categoryID string) ([]models.Question, error)

	// UpdateQuestion rewrites a question in a category the user may write to.
	UpdateQuestion(ctx context.Context, id string, req *UpdateQuestionRequest) (*models.Question, error)

	// DeleteQuestion removes a question from a category the user may write
	// to. There is no per-question authorship distinction.
	DeleteQuestion(ctx context.Context, id, userID string) error
}
