package services

import (
	"context"

	"interviewdeck/internal/domain/models"
)

// CategoryAuthorizer computes the caller's relationship to a category and
// enforces it on writes. Implementations must consult current store state on
// every call; permission decisions are never cached across requests.
//
// Design principle: services call the authorizer before touching the
// question or category stores. This separates authorization (who can write)
// from identification (which resource).
type CategoryAuthorizer interface {
	// Classify computes OWNER / GRANTED / PENDING / NONE for the user.
	Classify(ctx context.Context, userID string, category *models.Category) (models.Classification, error)

	// AuthorizeWrite succeeds iff the classification is OWNER or GRANTED.
	// PENDING and NONE both fail with ErrForbidden.
	AuthorizeWrite(ctx context.Context, userID string, category *models.Category) error
}
