// Package authz implements the category authorization engine: a pure
// decision function over the category store and the access-request ledger.
// It owns no storage and holds no state between calls, so a decision is
// never stale beyond the atomicity window of a single store operation.
package authz

import (
	"context"
	"errors"
	"fmt"

	"interviewdeck/internal/domain"
	"interviewdeck/internal/domain/models"
	"interviewdeck/internal/domain/repositories"
	"interviewdeck/internal/domain/services"
)

// Engine implements services.CategoryAuthorizer on the access-request
// ledger. Ownership is read off the category row; grant status is read from
// the ledger on every call.
type Engine struct {
	requestRepo repositories.AccessRequestRepository
}

// NewEngine creates an authorization engine over the access-request ledger.
func NewEngine(requestRepo repositories.AccessRequestRepository) services.CategoryAuthorizer {
	return &Engine{requestRepo: requestRepo}
}

// Classify computes the user's relationship to a category. OWNER wins
// outright; otherwise the ledger decides: an APPROVED row anywhere grants,
// else a PENDING latest row is pending, else NONE. OWNER is exclusive with
// the others because owners can never create requests for their own
// category.
func (e *Engine) Classify(ctx context.Context, userID string, category *models.Category) (models.Classification, error) {
	if category.OwnerID == userID {
		return models.ClassificationOwner, nil
	}

	approved, err := e.requestRepo.HasApproved(ctx, category.ID, userID)
	if err != nil {
		return models.ClassificationNone, fmt.Errorf("classify user %s: %w", userID, err)
	}
	if approved {
		return models.ClassificationGranted, nil
	}

	latest, err := e.requestRepo.Latest(ctx, category.ID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return models.ClassificationNone, nil
		}
		return models.ClassificationNone, fmt.Errorf("classify user %s: %w", userID, err)
	}
	if latest.Status == models.StatusPending {
		return models.ClassificationPending, nil
	}

	return models.ClassificationNone, nil
}

// AuthorizeWrite enforces the write gate: OWNER and GRANTED pass, PENDING
// and NONE fail with ErrForbidden. Callers surface the classification to the
// client through read responses, not through a different error code.
func (e *Engine) AuthorizeWrite(ctx context.Context, userID string, category *models.Category) error {
	classification, err := e.Classify(ctx, userID, category)
	if err != nil {
		return err
	}

	if !classification.CanWrite() {
		return fmt.Errorf("write access to category %s denied: %w", category.ID, domain.ErrForbidden)
	}

	return nil
}
