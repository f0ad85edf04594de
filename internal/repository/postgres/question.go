package postgres

import (
	"context"
	"fmt"

	"interviewdeck/internal/domain"
	"interviewdeck/internal/domain/models"
	"interviewdeck/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresQuestionRepository implements the QuestionRepository interface
type PostgresQuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(config *RepositoryConfig) repositories.QuestionRepository {
	return &PostgresQuestionRepository{pool: config.Pool}
}

// Create inserts a question
func (r *PostgresQuestionRepository) Create(ctx context.Context, question *models.Question) error {
	query := `
		INSERT INTO questions (id, category_id, question, answer, context, difficulty)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		question.ID,
		question.CategoryID,
		question.Question,
		question.Answer,
		question.Context,
		question.Difficulty,
	).Scan(&question.CreatedAt, &question.UpdatedAt)

	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("category %s: %w", question.CategoryID, domain.ErrNotFound)
		}
		return fmt.Errorf("create question: %w", err)
	}

	return nil
}

// GetByID retrieves a question by ID
func (r *PostgresQuestionRepository) GetByID(ctx context.Context, id string) (*models.Question, error) {
	query := `
		SELECT id, category_id, question, answer, context, difficulty, created_at, updated_at
		FROM questions
		WHERE id = $1
	`

	var question models.Question
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&question.ID,
		&question.CategoryID,
		&question.Question,
		&question.Answer,
		&question.Context,
		&question.Difficulty,
		&question.CreatedAt,
		&question.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	return &question, nil
}

// List retrieves questions newest first, optionally filtered by category
func (r *PostgresQuestionRepository) List(ctx context.Context, categoryID string) ([]models.Question, error) {
	query := `
		SELECT id, category_id, question, answer, context, difficulty, created_at, updated_at
		FROM questions
	`
	args := []interface{}{}
	if categoryID != "" {
		query += ` WHERE category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY created_at DESC`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var questions []models.Question
	for rows.Next() {
		var q models.Question
		err := rows.Scan(
			&q.ID,
			&q.CategoryID,
			&q.Question,
			&q.Answer,
			&q.Context,
			&q.Difficulty,
			&q.CreatedAt,
			&q.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate questions: %w", err)
	}

	if questions == nil {
		questions = []models.Question{}
	}

	return questions, nil
}

// Update rewrites a question's fields and bumps updated_at
func (r *PostgresQuestionRepository) Update(ctx context.Context, question *models.Question) error {
	query := `
		UPDATE questions
		SET question = $1, answer = $2, context = $3, difficulty = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		question.Question,
		question.Answer,
		question.Context,
		question.Difficulty,
		question.ID,
	).Scan(&question.UpdatedAt)

	if err != nil {
		if IsPgNoRowsError(err) {
			return fmt.Errorf("question %s: %w", question.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update question: %w", err)
	}

	return nil
}

// Delete removes a question
func (r *PostgresQuestionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM questions WHERE id = $1`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("question %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByCategory removes all questions in a category
func (r *PostgresQuestionRepository) DeleteByCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM questions WHERE category_id = $1`

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, categoryID); err != nil {
		return fmt.Errorf("delete questions for category: %w", err)
	}

	return nil
}
