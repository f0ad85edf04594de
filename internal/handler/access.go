package handler

import (
	"log/slog"
	"net/http"

	"interviewdeck/internal/domain/services"
	"interviewdeck/internal/httputil"
)

// AccessHandler handles the access-request protocol endpoints
type AccessHandler struct {
	accessService services.AccessService
	logger        *slog.Logger
}

// NewAccessHandler creates a new access handler
func NewAccessHandler(accessService services.AccessService, logger *slog.Logger) *AccessHandler {
	return &AccessHandler{
		accessService: accessService,
		logger:        logger,
	}
}

// RequestAccess opens a PENDING access request on a category
// POST /api/categories/{id}/request-access
func (h *AccessHandler) RequestAccess(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	categoryID := r.PathValue("id")
	if categoryID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "category ID is required")
		return
	}

	request, err := h.accessService.RequestAccess(r.Context(), categoryID, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, request)
}

// ListRequests retrieves a category's access requests for its owner
// GET /api/categories/{id}/requests
func (h *AccessHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	categoryID := r.PathValue("id")
	if categoryID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "category ID is required")
		return
	}

	requests, err := h.accessService.ListRequests(r.Context(), categoryID, userID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, requests)
}

// Respond decides a pending access request
// POST /api/categories/{id}/requests/{requestID}/respond
func (h *AccessHandler) Respond(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	categoryID := r.PathValue("id")
	requestID := r.PathValue("requestID")
	if categoryID == "" || requestID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "category ID and request ID are required")
		return
	}

	var req services.RespondRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	request, err := h.accessService.Respond(r.Context(), categoryID, requestID, userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, request)
}
