package service

import (
	"context"
	"fmt"
	"log/slog"

	"interviewdeck/internal/domain"
	"interviewdeck/internal/domain/models"
	"interviewdeck/internal/domain/repositories"
	"interviewdeck/internal/domain/services"
	"interviewdeck/internal/ids"
)

// accessService drives the request -> approve/reject protocol. It never
// mutates category rows; the ledger's atomic primitives (partial unique
// index on insert, conditional update on decide) carry the concurrency
// guarantees, so there is no check-then-act window here.
type accessService struct {
	requestRepo  repositories.AccessRequestRepository
	categoryRepo repositories.CategoryRepository
	logger       *slog.Logger
}

// NewAccessService creates a new access service
func NewAccessService(
	requestRepo repositories.AccessRequestRepository,
	categoryRepo repositories.CategoryRepository,
	logger *slog.Logger,
) services.AccessService {
	return &accessService{
		requestRepo:  requestRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// RequestAccess opens a PENDING request for the caller. Owners are refused
// outright; a duplicate pending request surfaces as a conflict from the
// store's uniqueness constraint, including when two concurrent calls race.
func (s *accessService) RequestAccess(ctx context.Context, categoryID, requesterID string) (*models.AccessRequest, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if category.OwnerID == requesterID {
		return nil, fmt.Errorf("category %s: %w", categoryID, domain.ErrSelfOwnership)
	}

	request := &models.AccessRequest{
		ID:          ids.New(),
		CategoryID:  category.ID,
		RequesterID: requesterID,
		Status:      models.StatusPending,
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info("access requested",
		"request_id", request.ID,
		"category_id", category.ID,
		"requester_id", requesterID,
	)

	return request, nil
}

// ListRequests retrieves a category's requests for its owner
func (s *accessService) ListRequests(ctx context.Context, categoryID, userID string) ([]models.AccessRequestView, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if category.OwnerID != userID {
		return nil, fmt.Errorf("only the owner may list requests for category %s: %w", categoryID, domain.ErrForbidden)
	}

	return s.requestRepo.ListByCategory(ctx, categoryID)
}

// Respond decides a PENDING request. Ownership is checked against the
// request's category, so the requester themselves cannot approve it. The
// status=PENDING guard in the store makes the transition atomic: a second
// decider observes ErrAlreadyDecided, never a silent overwrite.
func (s *accessService) Respond(ctx context.Context, categoryID, requestID, userID string, req *services.RespondRequest) (*models.AccessRequest, error) {
	if !req.Status.Valid() || !req.Status.Terminal() {
		return nil, fmt.Errorf("%w: status must be APPROVED or REJECTED", domain.ErrValidation)
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if categoryID != "" && request.CategoryID != categoryID {
		return nil, fmt.Errorf("access request %s: %w", requestID, domain.ErrNotFound)
	}

	category, err := s.categoryRepo.GetByID(ctx, request.CategoryID)
	if err != nil {
		return nil, err
	}

	if category.OwnerID != userID {
		return nil, fmt.Errorf("only the owner may decide requests for category %s: %w", category.ID, domain.ErrForbidden)
	}

	decided, err := s.requestRepo.Decide(ctx, requestID, req.Status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("access request decided",
		"request_id", decided.ID,
		"category_id", decided.CategoryID,
		"status", decided.Status,
		"owner_id", userID,
	)

	return decided, nil
}
