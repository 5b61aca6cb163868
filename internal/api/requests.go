package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rescuelink/rescuelink/internal/domain"
	"github.com/rescuelink/rescuelink/internal/lifecycle"
)

// RequestHandler handles the SOS request lifecycle endpoints.
type RequestHandler struct {
	*Handler
	lifecycle *lifecycle.Service
}

// NewRequestHandler creates a new request handler.
func NewRequestHandler(base *Handler, svc *lifecycle.Service) *RequestHandler {
	return &RequestHandler{Handler: base, lifecycle: svc}
}

// RegisterRoutes registers SOS request routes.
func (h *RequestHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/sos-requests", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}/approve", h.Approve)
		r.Patch("/{id}/complete", h.Complete)
	})
}

func requestID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Create files a new SOS request for the calling requester.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	p := principal(w, r)
	if p == nil {
		return
	}

	var input lifecycle.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.lifecycle.CreateRequest(r.Context(), p.UserID, input)
	if err != nil {
		DomainError(w, err)
		return
	}
	JSON(w, http.StatusCreated, request)
}

// List returns the caller's view of requests: pending ones for responders,
// the caller's own for requesters.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	p := principal(w, r)
	if p == nil {
		return
	}

	requests, err := h.lifecycle.ListRequests(r.Context(), p.UserID)
	if err != nil {
		DomainError(w, err)
		return
	}
	JSON(w, http.StatusOK, requests)
}

// Get returns a single request. Requesters only see their own.
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	p := principal(w, r)
	if p == nil {
		return
	}
	id, ok := requestID(r)
	if !ok {
		Error(w, http.StatusBadRequest, "invalid request id")
		return
	}

	request, err := h.lifecycle.GetRequest(r.Context(), id)
	if err != nil {
		DomainError(w, err)
		return
	}
	if p.Role != domain.RoleResponder && request.UserID != p.UserID {
		Error(w, http.StatusForbidden, "not authorized")
		return
	}
	JSON(w, http.StatusOK, request)
}

// Approve claims a pending request for the calling responder.
func (h *RequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	p := principal(w, r)
	if p == nil {
		return
	}
	id, ok := requestID(r)
	if !ok {
		Error(w, http.StatusBadRequest, "invalid request id")
		return
	}

	request, err := h.lifecycle.ApproveRequest(r.Context(), id, p.UserID)
	if err != nil {
		DomainError(w, err)
		return
	}
	JSON(w, http.StatusOK, request)
}

// Complete marks an approved request as resolved and awards the reward.
func (h *RequestHandler) Complete(w http.ResponseWriter, r *http.Request) {
	p := principal(w, r)
	if p == nil {
		return
	}
	id, ok := requestID(r)
	if !ok {
		Error(w, http.StatusBadRequest, "invalid request id")
		return
	}

	if err := h.lifecycle.CompleteRequest(r.Context(), id, p.UserID); err != nil {
		DomainError(w, err)
		return
	}
	JSON(w, http.StatusOK, map[string]string{"status": "completed"})
}
