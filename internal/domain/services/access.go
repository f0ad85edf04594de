package services

import (
	"context"

	"interviewdeck/internal/domain/models"
)

// RespondRequest carries the owner's decision on an access request.
type RespondRequest struct {
	Status models.RequestStatus `json:"status"`
}

// AccessService drives the request -> approve/reject protocol.
type AccessService interface {
	// RequestAccess opens a PENDING request for the caller on a category.
	// Fails with ErrSelfOwnership for the owner, ErrConflict if a PENDING
	// request already exists for the pair.
	RequestAccess(ctx context.Context, categoryID, requesterID string) (*models.AccessRequest, error)

	// ListRequests retrieves a category's requests for its owner, joined
	// with requester identity. ErrForbidden for anyone else.
	ListRequests(ctx context.Context, categoryID, userID string) ([]models.AccessRequestView, error)

	// Respond decides a PENDING request. Owner only; terminal requests
	// fail with ErrAlreadyDecided.
	Respond(ctx context.Context, categoryID, requestID, userID string, req *RespondRequest) (*models.AccessRequest, error)
}
