package service

import (
	"context"
	"errors"
	"testing"

	"interviewdeck/internal/domain"
	"interviewdeck/internal/domain/models"
	"interviewdeck/internal/domain/services"
)

type accessFixture struct {
	svc        services.AccessService
	users      *memUserRepo
	categories *memCategoryRepo
	requests   *memRequestRepo
	owner      *models.User
	requester  *models.User
	category   *models.Category
}

func newAccessFixture(t *testing.T) *accessFixture {
	t.Helper()
	ctx := context.Background()

	users := newMemUserRepo()
	categories := newMemCategoryRepo()
	requests := newMemRequestRepo(users)

	owner := &models.User{ID: "owner-1", Email: "owner@example.com", FirstName: "Olivia", LastName: "Owens"}
	requester := &models.User{ID: "user-2", Email: "rita@example.com", FirstName: "Rita", LastName: "Reyes"}
	if err := users.Create(ctx, owner); err != nil {
		t.Fatal(err)
	}
	if err := users.Create(ctx, requester); err != nil {
		t.Fatal(err)
	}

	category := &models.Category{ID: "cat-1", Name: "System Design", OwnerID: owner.ID}
	if err := categories.Create(ctx, category); err != nil {
		t.Fatal(err)
	}

	return &accessFixture{
		svc:        NewAccessService(requests, categories, testLogger()),
		users:      users,
		categories: categories,
		requests:   requests,
		owner:      owner,
		requester:  requester,
		category:   category,
	}
}

func TestRequestAccess(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	req, err := f.svc.RequestAccess(ctx, f.category.ID, f.requester.ID)
	if err != nil {
		t.Fatalf("RequestAccess() error = %v", err)
	}
	if req.Status != models.StatusPending {
		t.Errorf("status = %v, want PENDING", req.Status)
	}
	if req.ID == "" {
		t.Error("request ID is empty")
	}
	if req.CategoryID != f.category.ID || req.RequesterID != f.requester.ID {
		t.Errorf("request = %+v, wrong pair", req)
	}
	if req.DecidedAt != nil {
		t.Error("DecidedAt set on a pending request")
	}
}

func TestRequestAccessOwnerRefused(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	_, err := f.svc.RequestAccess(ctx, f.category.ID, f.owner.ID)
	if !errors.Is(err, domain.ErrSelfOwnership) {
		t.Errorf("RequestAccess() error = %v, want ErrSelfOwnership", err)
	}
}

func TestRequestAccessDuplicatePending(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	if _, err := f.svc.RequestAccess(ctx, f.category.ID, f.requester.ID); err != nil {
		t.Fatalf("first RequestAccess() error = %v", err)
	}

	_, err := f.svc.RequestAccess(ctx, f.category.ID, f.requester.ID)
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second RequestAccess() error = %v, want ErrConflict", err)
	}
}

func TestRequestAccessUnknownCategory(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	_, err := f.svc.RequestAccess(ctx, "missing", f.requester.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("RequestAccess() error = %v, want ErrNotFound", err)
	}
}

func TestRequestAccessAfterRejection(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	first, err := f.svc.RequestAccess(ctx, f.category.ID, f.requester.ID)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Respond(ctx, f.category.ID, first.ID, f.owner.ID,
		&services.RespondRequest{Status: models.StatusRejected}); err != nil {
		t.Fatalf("Respond() error = %v", err)
	}

	second, err := f.svc.RequestAccess(ctx, f.category.ID, f.requester.ID)
	if err != nil {
		t.Fatalf("RequestAccess() after rejection error = %v", err)
	}
	if second.ID == first.ID {
		t.Error("re-request reused the rejected request's ID")
	}
	if second.Status != models.StatusPending {
		t.Errorf("status = %v, want PENDING", second.Status)
	}
}

func TestRespondApprove(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	req, err := f.svc.RequestAccess(ctx, f.category.ID, f.requester.ID)
	if err != nil {
		t.Fatal(err)
	}

	decided, err := f.svc.Respond(ctx, f.category.ID, req.ID, f.owner.ID,
		&services.RespondRequest{Status: models.StatusApproved})
	if err != nil {
		t.Fatalf("Respond() error = %v", err)
	}
	if decided.Status != models.StatusApproved {
		t.Errorf("status = %v, want APPROVED", decided.Status)
	}
	if decided.DecidedAt == nil {
		t.Error("DecidedAt not stamped")
	}

	approved, err := f.requests.HasApproved(ctx, f.category.ID, f.requester.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !approved {
		t.Error("approval not visible in the ledger")
	}
}

func TestRespondTwice(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	req, err := f.svc.RequestAccess(ctx, f.category.ID, f.requester.ID)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.svc.Respond(ctx, f.category.ID, req.ID, f.owner.ID,
		&services.RespondRequest{Status: models.StatusApproved}); err != nil {
		t.Fatal(err)
	}

	_, err = f.svc.Respond(ctx, f.category.ID, req.ID, f.owner.ID,
		&services.RespondRequest{Status: models.StatusRejected})
	if !errors.Is(err, domain.ErrAlreadyDecided) {
		t.Errorf("second Respond() error = %v, want ErrAlreadyDecided", err)
	}

	got, err := f.requests.GetByID(ctx, req.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.StatusApproved {
		t.Errorf("status after losing decide = %v, want APPROVED preserved", got.Status)
	}
}

func TestRespondValidation(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	req, err := f.svc.RequestAccess(ctx, f.category.ID, f.requester.ID)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		status models.RequestStatus
	}{
		{"pending is not a decision", models.StatusPending},
		{"unknown status", models.RequestStatus("MAYBE")},
		{"empty status", models.RequestStatus("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Respond(ctx, f.category.ID, req.ID, f.owner.ID,
				&services.RespondRequest{Status: tt.status})
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("Respond(%q) error = %v, want ErrValidation", tt.status, err)
			}
		})
	}
}

func TestRespondNonOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	req, err := f.svc.RequestAccess(ctx, f.category.ID, f.requester.ID)
	if err != nil {
		t.Fatal(err)
	}

	// The requester cannot approve their own request.
	_, err = f.svc.Respond(ctx, f.category.ID, req.ID, f.requester.ID,
		&services.RespondRequest{Status: models.StatusApproved})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Respond() by requester error = %v, want ErrForbidden", err)
	}
}

func TestRespondCategoryMismatch(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	other := &models.Category{ID: "cat-2", Name: "Behavioral", OwnerID: f.owner.ID}
	if err := f.categories.Create(ctx, other); err != nil {
		t.Fatal(err)
	}

	req, err := f.svc.RequestAccess(ctx, f.category.ID, f.requester.ID)
	if err != nil {
		t.Fatal(err)
	}

	_, err = f.svc.Respond(ctx, other.ID, req.ID, f.owner.ID,
		&services.RespondRequest{Status: models.StatusApproved})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Respond() with wrong category error = %v, want ErrNotFound", err)
	}
}

func TestListRequests(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	if _, err := f.svc.RequestAccess(ctx, f.category.ID, f.requester.ID); err != nil {
		t.Fatal(err)
	}

	views, err := f.svc.ListRequests(ctx, f.category.ID, f.owner.ID)
	if err != nil {
		t.Fatalf("ListRequests() error = %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("len(views) = %d, want 1", len(views))
	}
	if views[0].Requester.Email != f.requester.Email {
		t.Errorf("requester email = %q, want %q", views[0].Requester.Email, f.requester.Email)
	}
}

func TestListRequestsNonOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	f := newAccessFixture(t)

	_, err := f.svc.ListRequests(ctx, f.category.ID, f.requester.ID)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("ListRequests() error = %v, want ErrForbidden", err)
	}
}
