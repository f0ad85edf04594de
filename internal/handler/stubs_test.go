package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"interviewdeck/internal/domain/models"
	"interviewdeck/internal/domain/services"
	"interviewdeck/internal/httputil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Service stubs with overridable function fields. A nil field panics, which
// surfaces as a test failure on an unexpected call.

type stubUserService struct {
	signup  func(ctx context.Context, req *services.SignupRequest) (*services.AuthResult, error)
	login   func(ctx context.Context, req *services.LoginRequest) (*services.AuthResult, error)
	getUser func(ctx context.Context, id string) (*models.User, error)
}

func (s *stubUserService) Signup(ctx context.Context, req *services.SignupRequest) (*services.AuthResult, error) {
	return s.signup(ctx, req)
}

func (s *stubUserService) Login(ctx context.Context, req *services.LoginRequest) (*services.AuthResult, error) {
	return s.login(ctx, req)
}

func (s *stubUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, id)
}

type stubCategoryService struct {
	create func(ctx context.Context, req *services.CreateCategoryRequest) (*models.Category, error)
	list   func(ctx context.Context, userID string) ([]models.CategoryView, error)
	delete func(ctx context.Context, id, userID string) error
}

func (s *stubCategoryService) CreateCategory(ctx context.Context, req *services.CreateCategoryRequest) (*models.Category, error) {
	return s.create(ctx, req)
}

func (s *stubCategoryService) ListCategories(ctx context.Context, userID string) ([]models.CategoryView, error) {
	return s.list(ctx, userID)
}

func (s *stubCategoryService) DeleteCategory(ctx context.Context, id, userID string) error {
	return s.delete(ctx, id, userID)
}

type stubQuestionService struct {
	create func(ctx context.Context, req *services.CreateQuestionRequest) (*models.Question, error)
	list   func(ctx context.Context, categoryID string) ([]models.Question, error)
	update func(ctx context.Context, id string, req *services.UpdateQuestionRequest) (*models.Question, error)
	delete func(ctx context.Context, id, userID string) error
}

func (s *stubQuestionService) CreateQuestion(ctx context.Context, req *services.CreateQuestionRequest) (*models.Question, error) {
	return s.create(ctx, req)
}

func (s *stubQuestionService) ListQuestions(ctx context.Context, categoryID string) ([]models.Question, error) {
	return s.list(ctx, categoryID)
}

func (s *stubQuestionService) UpdateQuestion(ctx context.Context, id string, req *services.UpdateQuestionRequest) (*models.Question, error) {
	return s.update(ctx, id, req)
}

func (s *stubQuestionService) DeleteQuestion(ctx context.Context, id, userID string) error {
	return s.delete(ctx, id, userID)
}

type stubAccessService struct {
	request func(ctx context.Context, categoryID, requesterID string) (*models.AccessRequest, error)
	list    func(ctx context.Context, categoryID, userID string) ([]models.AccessRequestView, error)
	respond func(ctx context.Context, categoryID, requestID, userID string, req *services.RespondRequest) (*models.AccessRequest, error)
}

func (s *stubAccessService) RequestAccess(ctx context.Context, categoryID, requesterID string) (*models.AccessRequest, error) {
	return s.request(ctx, categoryID, requesterID)
}

func (s *stubAccessService) ListRequests(ctx context.Context, categoryID, userID string) ([]models.AccessRequestView, error) {
	return s.list(ctx, categoryID, userID)
}

func (s *stubAccessService) Respond(ctx context.Context, categoryID, requestID, userID string, req *services.RespondRequest) (*models.AccessRequest, error) {
	return s.respond(ctx, categoryID, requestID, userID, req)
}

// asUser stamps the request context as the auth middleware would.
func asUser(r *http.Request, userID string) *http.Request {
	return httputil.WithUserID(r, userID)
}

func do(h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}
