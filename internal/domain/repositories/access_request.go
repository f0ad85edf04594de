package repositories

import (
	"context"

	"interviewdeck/internal/domain/models"
)

// AccessRequestRepository owns access-request rows. It exposes the two
// atomic primitives the approval protocol depends on: Create races on a
// partial unique index (single PENDING row per pair) and Decide is a
// conditional update guarded by status=PENDING.
type AccessRequestRepository interface {
	// Create inserts a PENDING request. Returns a ConflictError if a
	// PENDING row already exists for the (category, requester) pair,
	// including when a concurrent insert wins the race.
	Create(ctx context.Context, request *models.AccessRequest) error

	// GetByID retrieves a request by ID.
	GetByID(ctx context.Context, id string) (*models.AccessRequest, error)

	// Latest retrieves the newest request for a (category, requester)
	// pair, or ErrNotFound if the user never requested access.
	Latest(ctx context.Context, categoryID, requesterID string) (*models.AccessRequest, error)

	// HasApproved reports whether an APPROVED request exists for the pair.
	HasApproved(ctx context.Context, categoryID, requesterID string) (bool, error)

	// ListByCategory retrieves all requests for a category joined with
	// requester identity, PENDING first then newest.
	ListByCategory(ctx context.Context, categoryID string) ([]models.AccessRequestView, error)

	// Decide transitions a PENDING request to a terminal status and stamps
	// decided_at. Returns ErrAlreadyDecided if the row is no longer
	// PENDING; under concurrent calls exactly one caller succeeds.
	Decide(ctx context.Context, id string, status models.RequestStatus) (*models.AccessRequest, error)

	// DeleteByCategory removes all requests for a category, as part of the
	// category delete cascade.
	DeleteByCategory(ctx context.Context, categoryID string) error
}
