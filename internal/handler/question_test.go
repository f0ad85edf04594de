package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"interviewdeck/internal/domain"
	"interviewdeck/internal/domain/models"
	"interviewdeck/internal/domain/services"
)

func TestListQuestionsFilter(t *testing.T) {
	svc := &stubQuestionService{
		list: func(ctx context.Context, categoryID string) ([]models.Question, error) {
			if categoryID != "cat-1" {
				t.Errorf("categoryID = %q, want cat-1", categoryID)
			}
			return []models.Question{{ID: "q-1", CategoryID: categoryID}}, nil
		},
	}
	h := NewQuestionHandler(svc, testLogger())

	r := asUser(httptest.NewRequest(http.MethodGet, "/api/questions?category_id=cat-1", nil), "user-2")
	rec := do(h.ListQuestions, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
}

func TestListQuestionsWholeCatalog(t *testing.T) {
	svc := &stubQuestionService{
		list: func(ctx context.Context, categoryID string) ([]models.Question, error) {
			if categoryID != "" {
				t.Errorf("categoryID = %q, want empty", categoryID)
			}
			return nil, nil
		},
	}
	h := NewQuestionHandler(svc, testLogger())

	r := asUser(httptest.NewRequest(http.MethodGet, "/api/questions", nil), "user-2")
	rec := do(h.ListQuestions, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
}

func TestCreateQuestion(t *testing.T) {
	svc := &stubQuestionService{
		create: func(ctx context.Context, req *services.CreateQuestionRequest) (*models.Question, error) {
			if req.UserID != "user-2" {
				t.Errorf("UserID = %q, want user-2", req.UserID)
			}
			return &models.Question{ID: "q-1", CategoryID: req.CategoryID, Question: req.Question}, nil
		},
	}
	h := NewQuestionHandler(svc, testLogger())

	body := strings.NewReader(`{"category_id":"cat-1","question":"What is a deadlock?","difficulty":"Medium"}`)
	r := asUser(httptest.NewRequest(http.MethodPost, "/api/questions", body), "user-2")

	rec := do(h.CreateQuestion, r)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}

	var got models.Question
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "q-1" {
		t.Errorf("id = %q", got.ID)
	}
}

func TestCreateQuestionForbidden(t *testing.T) {
	svc := &stubQuestionService{
		create: func(ctx context.Context, req *services.CreateQuestionRequest) (*models.Question, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewQuestionHandler(svc, testLogger())

	body := strings.NewReader(`{"category_id":"cat-1","question":"q","difficulty":"Easy"}`)
	r := asUser(httptest.NewRequest(http.MethodPost, "/api/questions", body), "user-stranger")

	rec := do(h.CreateQuestion, r)
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestUpdateQuestion(t *testing.T) {
	svc := &stubQuestionService{
		update: func(ctx context.Context, id string, req *services.UpdateQuestionRequest) (*models.Question, error) {
			if id != "q-1" || req.UserID != "user-2" {
				t.Errorf("update(%q) by %q", id, req.UserID)
			}
			return &models.Question{ID: id, Question: req.Question, Difficulty: req.Difficulty}, nil
		},
	}
	h := NewQuestionHandler(svc, testLogger())

	body := strings.NewReader(`{"question":"What is livelock?","difficulty":"Hard"}`)
	r := asUser(httptest.NewRequest(http.MethodPut, "/api/questions/q-1", body), "user-2")
	r.SetPathValue("id", "q-1")

	rec := do(h.UpdateQuestion, r)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
}

func TestDeleteQuestion(t *testing.T) {
	svc := &stubQuestionService{
		delete: func(ctx context.Context, id, userID string) error {
			return nil
		},
	}
	h := NewQuestionHandler(svc, testLogger())

	r := asUser(httptest.NewRequest(http.MethodDelete, "/api/questions/q-1", nil), "user-2")
	r.SetPathValue("id", "q-1")

	rec := do(h.DeleteQuestion, r)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
}

func TestDeleteQuestionNotFound(t *testing.T) {
	svc := &stubQuestionService{
		delete: func(ctx context.Context, id, userID string) error {
			return domain.ErrNotFound
		},
	}
	h := NewQuestionHandler(svc, testLogger())

	r := asUser(httptest.NewRequest(http.MethodDelete, "/api/questions/missing", nil), "user-2")
	r.SetPathValue("id", "missing")

	rec := do(h.DeleteQuestion, r)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
