package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rescuelink/rescuelink/internal/store"
)

// TriageChecker reports whether the classification service is reachable.
type TriageChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	repo   store.Repository
	triage TriageChecker // nil when triage is disabled
}

// NewHealthHandler creates a new health handler. triage may be nil.
func NewHealthHandler(repo store.Repository, triage TriageChecker) *HealthHandler {
	return &HealthHandler{repo: repo, triage: triage}
}

// Health returns the health status of the API and its dependencies.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]string{"api": "ok"}
	status := map[string]interface{}{
		"status": "healthy",
		"checks": checks,
	}
	statusCode := http.StatusOK

	if err := h.repo.Ping(ctx); err != nil {
		slog.Error("Health check failed", "error", err)
		status["status"] = "degraded"
		checks["database"] = "unreachable"
		statusCode = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	// Triage is best-effort; an unreachable classifier degrades the report
	// but does not fail the service.
	if h.triage != nil {
		if err := h.triage.Health(ctx); err != nil {
			slog.Warn("Triage health check failed", "error", err)
			checks["triage"] = "unreachable"
		} else {
			checks["triage"] = "ok"
		}
	} else {
		checks["triage"] = "disabled"
	}

	JSON(w, statusCode, status)
}

// RegisterHealth registers the health check route.
func (h *HealthHandler) RegisterHealth(r chi.Router) {
	r.Get("/health", h.Health)
}
