package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ResponderHandler handles responder profile and leaderboard endpoints.
type ResponderHandler struct {
	*Handler
}

// NewResponderHandler creates a new responder handler.
func NewResponderHandler(base *Handler) *ResponderHandler {
	return &ResponderHandler{Handler: base}
}

// RegisterRoutes registers responder routes.
func (h *ResponderHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/responders", func(r chi.Router) {
		r.Get("/", h.Leaderboard)
		r.Get("/me", h.GetMe)
	})
}

// Leaderboard returns all responder organizations sorted by points.
func (h *ResponderHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	if principal(w, r) == nil {
		return
	}

	responders, err := h.repo.ListResponders(r.Context())
	if err != nil {
		slog.Error("Failed to list responders", "error", err)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	JSON(w, http.StatusOK, responders)
}

// GetMe returns the calling responder's organization profile.
func (h *ResponderHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	p := principal(w, r)
	if p == nil {
		return
	}

	responder, err := h.repo.GetResponderByUser(r.Context(), p.UserID)
	if err != nil {
		slog.Error("Failed to load responder profile", "error", err, "user_id", p.UserID)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if responder == nil {
		Error(w, http.StatusNotFound, "not found")
		return
	}
	JSON(w, http.StatusOK, responder)
}
