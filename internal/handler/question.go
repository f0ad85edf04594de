package handler

import (
	"log/slog"
	"net/http"

	"interviewdeck/internal/domain/services"
	"interviewdeck/internal/httputil"
)

// QuestionHandler handles question HTTP requests
type QuestionHandler struct {
	questionService services.QuestionService
	logger          *slog.Logger
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService services.QuestionService, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		logger:          logger,
	}
}

// ListQuestions retrieves questions, optionally filtered by category
// GET /api/questions?category_id=
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}

	categoryID := r.URL.Query().Get("category_id")

	questions, err := h.questionService.ListQuestions(r.Context(), categoryID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, questions)
}

// CreateQuestion adds a question to a category
// POST /api/questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req services.CreateQuestionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = userID

	question, err := h.questionService.CreateQuestion(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, question)
}

// UpdateQuestion rewrites a question
// PUT /api/questions/{id}
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "question ID is required")
		return
	}

	var req services.UpdateQuestionRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.UserID = userID

	question, err := h.questionService.UpdateQuestion(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, question)
}

// DeleteQuestion removes a question
// DELETE /api/questions/{id}
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "question ID is required")
		return
	}

	if err := h.questionService.DeleteQuestion(r.Context(), id, userID); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
