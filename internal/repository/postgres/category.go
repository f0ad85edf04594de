package postgres

import (
	"context"
	"fmt"

	"interviewdeck/internal/domain"
	"interviewdeck/internal/domain/models"
	"interviewdeck/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCategoryRepository implements the CategoryRepository interface
type PostgresCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(config *RepositoryConfig) repositories.CategoryRepository {
	return &PostgresCategoryRepository{pool: config.Pool}
}

// Create inserts a category with the given owner
func (r *PostgresCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, name, owner_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		category.ID,
		category.Name,
		category.OwnerID,
	).Scan(&category.CreatedAt)

	if err != nil {
		return fmt.Errorf("create category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by ID
func (r *PostgresCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := `
		SELECT id, name, owner_id, created_at
		FROM categories
		WHERE id = $1
	`

	var category models.Category
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.OwnerID,
		&category.CreatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get category: %w", err)
	}

	return &category, nil
}

// ListForUser retrieves every category annotated with the caller's
// classification projection. The projection is computed here in one query
// from current rows; it is never stored.
func (r *PostgresCategoryRepository) ListForUser(ctx context.Context, userID string) ([]models.CategoryView, error) {
	query := `
		SELECT
			c.id,
			c.name,
			c.owner_id,
			c.created_at,
			u.first_name || ' ' || u.last_name AS owner_name,
			CASE
				WHEN c.owner_id = $1 THEN 'OWNER'
				WHEN EXISTS(
					SELECT 1 FROM access_requests
					WHERE category_id = c.id AND requester_id = $1 AND status = 'APPROVED'
				) THEN 'GRANTED'
				WHEN EXISTS(
					SELECT 1 FROM access_requests
					WHERE category_id = c.id AND requester_id = $1 AND status = 'PENDING'
				) THEN 'PENDING'
				ELSE 'NONE'
			END AS classification,
			COALESCE((
				SELECT status FROM access_requests
				WHERE category_id = c.id AND requester_id = $1
				ORDER BY created_at DESC
				LIMIT 1
			), '') AS request_status
		FROM categories c
		JOIN users u ON c.owner_id = u.id
		ORDER BY c.name
	`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var views []models.CategoryView
	for rows.Next() {
		var v models.CategoryView
		err := rows.Scan(
			&v.ID,
			&v.Name,
			&v.OwnerID,
			&v.CreatedAt,
			&v.OwnerName,
			&v.Classification,
			&v.RequestStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		v.HasPermission = v.Classification.CanWrite()
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}

	if views == nil {
		views = []models.CategoryView{}
	}

	return views, nil
}

// Delete removes a category row. Dependent rows are removed by the service
// inside the same transaction before this runs.
func (r *PostgresCategoryRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM categories WHERE id = $1`

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
