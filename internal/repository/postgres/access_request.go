package postgres

import (
	"context"
	"fmt"

	"interviewdeck/internal/domain"
	"interviewdeck/internal/domain/models"
	"interviewdeck/internal/domain/repositories"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresAccessRequestRepository implements the AccessRequestRepository
// interface. The single-pending-per-pair invariant is enforced by a partial
// unique index, so concurrent duplicate requests lose the race here rather
// than in application code.
type PostgresAccessRequestRepository struct {
	pool *pgxpool.Pool
}

// NewAccessRequestRepository creates a new access request repository
func NewAccessRequestRepository(config *RepositoryConfig) repositories.AccessRequestRepository {
	return &PostgresAccessRequestRepository{pool: config.Pool}
}

// Create inserts a PENDING request
func (r *PostgresAccessRequestRepository) Create(ctx context.Context, request *models.AccessRequest) error {
	query := `
		INSERT INTO access_requests (id, category_id, requester_id, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		request.ID,
		request.CategoryID,
		request.RequesterID,
		request.Status,
	).Scan(&request.CreatedAt)

	if err != nil {
		if IsPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      "an access request for this category is already pending",
				ResourceType: "access_request",
			}
		}
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("category %s: %w", request.CategoryID, domain.ErrNotFound)
		}
		return fmt.Errorf("create access request: %w", err)
	}

	return nil
}

// GetByID retrieves a request by ID
func (r *PostgresAccessRequestRepository) GetByID(ctx context.Context, id string) (*models.AccessRequest, error) {
	query := `
		SELECT id, category_id, requester_id, status, created_at, decided_at
		FROM access_requests
		WHERE id = $1
	`

	var request models.AccessRequest
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.CategoryID,
		&request.RequesterID,
		&request.Status,
		&request.CreatedAt,
		&request.DecidedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("access request %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get access request: %w", err)
	}

	return &request, nil
}

// Latest retrieves the newest request for a (category, requester) pair
func (r *PostgresAccessRequestRepository) Latest(ctx context.Context, categoryID, requesterID string) (*models.AccessRequest, error) {
	query := `
		SELECT id, category_id, requester_id, status, created_at, decided_at
		FROM access_requests
		WHERE category_id = $1 AND requester_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var request models.AccessRequest
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, categoryID, requesterID).Scan(
		&request.ID,
		&request.CategoryID,
		&request.RequesterID,
		&request.Status,
		&request.CreatedAt,
		&request.DecidedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("access request for category %s: %w", categoryID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get latest access request: %w", err)
	}

	return &request, nil
}

// HasApproved reports whether an APPROVED request exists for the pair
func (r *PostgresAccessRequestRepository) HasApproved(ctx context.Context, categoryID, requesterID string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM access_requests
			WHERE category_id = $1 AND requester_id = $2 AND status = 'APPROVED'
		)
	`

	var approved bool
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query, categoryID, requesterID).Scan(&approved); err != nil {
		return false, fmt.Errorf("check approved access: %w", err)
	}

	return approved, nil
}

// ListByCategory retrieves all requests for a category joined with the
// requester's identity, PENDING first then newest
func (r *PostgresAccessRequestRepository) ListByCategory(ctx context.Context, categoryID string) ([]models.AccessRequestView, error) {
	query := `
		SELECT
			ar.id, ar.category_id, ar.requester_id, ar.status, ar.created_at, ar.decided_at,
			u.first_name, u.last_name, u.email
		FROM access_requests ar
		JOIN users u ON ar.requester_id = u.id
		WHERE ar.category_id = $1
		ORDER BY (ar.status = 'PENDING') DESC, ar.created_at DESC
	`

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list access requests: %w", err)
	}
	defer rows.Close()

	var views []models.AccessRequestView
	for rows.Next() {
		var v models.AccessRequestView
		err := rows.Scan(
			&v.ID,
			&v.CategoryID,
			&v.RequesterID,
			&v.Status,
			&v.CreatedAt,
			&v.DecidedAt,
			&v.Requester.FirstName,
			&v.Requester.LastName,
			&v.Requester.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("scan access request: %w", err)
		}
		views = append(views, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate access requests: %w", err)
	}

	if views == nil {
		views = []models.AccessRequestView{}
	}

	return views, nil
}

// Decide transitions a PENDING request to a terminal status. The WHERE
// clause on status makes the update conditional: of two concurrent deciders
// exactly one sees RowsAffected()==1, the other gets ErrAlreadyDecided.
func (r *PostgresAccessRequestRepository) Decide(ctx context.Context, id string, status models.RequestStatus) (*models.AccessRequest, error) {
	query := `
		UPDATE access_requests
		SET status = $1, decided_at = now()
		WHERE id = $2 AND status = 'PENDING'
		RETURNING id, category_id, requester_id, status, created_at, decided_at
	`

	var request models.AccessRequest
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, status, id).Scan(
		&request.ID,
		&request.CategoryID,
		&request.RequesterID,
		&request.Status,
		&request.CreatedAt,
		&request.DecidedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			// Row missing entirely vs. already terminal
			existing, getErr := r.GetByID(ctx, id)
			if getErr != nil {
				return nil, getErr
			}
			return nil, fmt.Errorf("access request %s is %s: %w", id, existing.Status, domain.ErrAlreadyDecided)
		}
		return nil, fmt.Errorf("decide access request: %w", err)
	}

	return &request, nil
}

// DeleteByCategory removes all requests for a category
func (r *PostgresAccessRequestRepository) DeleteByCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM access_requests WHERE category_id = $1`

	executor := GetExecutor(ctx, r.pool)
	if _, err := executor.Exec(ctx, query, categoryID); err != nil {
		return fmt.Errorf("delete access requests for category: %w", err)
	}

	return nil
}
