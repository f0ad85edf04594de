package service

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"interviewdeck/internal/domain"
	"interviewdeck/internal/domain/models"
	"interviewdeck/internal/domain/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memUserRepo is an in-memory UserRepository.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return &domain.ConflictError{Message: "email already registered", ResourceType: "user"}
		}
	}
	u := *user
	u.CreatedAt = time.Now()
	r.users[u.ID] = &u
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// memCategoryRepo is an in-memory CategoryRepository.
type memCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*models.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[string]*models.Category)}
}

func (r *memCategoryRepo) Create(ctx context.Context, category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *category
	c.CreatedAt = time.Now()
	r.categories[c.ID] = &c
	return nil
}

func (r *memCategoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) ListForUser(ctx context.Context, userID string) ([]models.CategoryView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	views := make([]models.CategoryView, 0, len(r.categories))
	for _, c := range r.categories {
		views = append(views, models.CategoryView{Category: *c})
	}
	return views, nil
}

func (r *memCategoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.categories, id)
	return nil
}

// memQuestionRepo is an in-memory QuestionRepository.
type memQuestionRepo struct {
	mu        sync.Mutex
	questions map[string]*models.Question
}

func newMemQuestionRepo() *memQuestionRepo {
	return &memQuestionRepo{questions: make(map[string]*models.Question)}
}

func (r *memQuestionRepo) Create(ctx context.Context, question *models.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := *question
	q.CreatedAt = time.Now()
	q.UpdatedAt = q.CreatedAt
	r.questions[q.ID] = &q
	return nil
}

func (r *memQuestionRepo) GetByID(ctx context.Context, id string) (*models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.questions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (r *memQuestionRepo) List(ctx context.Context, categoryID string) ([]models.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Question
	for _, q := range r.questions {
		if categoryID == "" || q.CategoryID == categoryID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *memQuestionRepo) Update(ctx context.Context, question *models.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.questions[question.ID]
	if !ok {
		return domain.ErrNotFound
	}
	q := *question
	q.CreatedAt = existing.CreatedAt
	q.UpdatedAt = time.Now()
	r.questions[q.ID] = &q
	return nil
}

func (r *memQuestionRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.questions[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.questions, id)
	return nil
}

func (r *memQuestionRepo) DeleteByCategory(ctx context.Context, categoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, q := range r.questions {
		if q.CategoryID == categoryID {
			delete(r.questions, id)
		}
	}
	return nil
}

// memRequestRepo is an in-memory AccessRequestRepository. It mirrors the
// store's atomic guarantees: at most one PENDING row per (category,
// requester) pair, and Decide only transitions rows still PENDING.
type memRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*models.AccessRequest
	users    *memUserRepo
}

func newMemRequestRepo(users *memUserRepo) *memRequestRepo {
	return &memRequestRepo{requests: make(map[string]*models.AccessRequest), users: users}
}

func (r *memRequestRepo) Create(ctx context.Context, request *models.AccessRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.requests {
		if existing.CategoryID == request.CategoryID &&
			existing.RequesterID == request.RequesterID &&
			existing.Status == models.StatusPending {
			return &domain.ConflictError{
				Message:      "an access request for this category is already pending",
				ResourceType: "access_request",
			}
		}
	}
	req := *request
	req.CreatedAt = time.Now()
	r.requests[req.ID] = &req
	request.CreatedAt = req.CreatedAt
	return nil
}

func (r *memRequestRepo) GetByID(ctx context.Context, id string) (*models.AccessRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *req
	return &cp, nil
}

func (r *memRequestRepo) Latest(ctx context.Context, categoryID, requesterID string) (*models.AccessRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var latest *models.AccessRequest
	for _, req := range r.requests {
		if req.CategoryID != categoryID || req.RequesterID != requesterID {
			continue
		}
		if latest == nil || req.CreatedAt.After(latest.CreatedAt) {
			latest = req
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (r *memRequestRepo) HasApproved(ctx context.Context, categoryID, requesterID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, req := range r.requests {
		if req.CategoryID == categoryID && req.RequesterID == requesterID && req.Status == models.StatusApproved {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRequestRepo) ListByCategory(ctx context.Context, categoryID string) ([]models.AccessRequestView, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AccessRequestView
	for _, req := range r.requests {
		if req.CategoryID != categoryID {
			continue
		}
		view := models.AccessRequestView{AccessRequest: *req}
		if r.users != nil {
			if u, err := r.users.GetByID(ctx, req.RequesterID); err == nil {
				view.Requester = models.RequesterInfo{
					FirstName: u.FirstName,
					LastName:  u.LastName,
					Email:     u.Email,
				}
			}
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *memRequestRepo) Decide(ctx context.Context, id string, status models.RequestStatus) (*models.AccessRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if req.Status != models.StatusPending {
		return nil, domain.ErrAlreadyDecided
	}
	now := time.Now()
	req.Status = status
	req.DecidedAt = &now
	cp := *req
	return &cp, nil
}

func (r *memRequestRepo) DeleteByCategory(ctx context.Context, categoryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, req := range r.requests {
		if req.CategoryID == categoryID {
			delete(r.requests, id)
		}
	}
	return nil
}

// fakeTxManager runs the function directly and counts invocations.
type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	m.calls++
	return fn(ctx)
}
