package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/rescuelink/rescuelink/internal/domain"
	"github.com/rescuelink/rescuelink/internal/identity"
)

// UserHandler handles registration and the current-principal endpoint.
type UserHandler struct {
	*Handler
}

// NewUserHandler creates a new user handler.
func NewUserHandler(base *Handler) *UserHandler {
	return &UserHandler{Handler: base}
}

// RegisterRoutes registers user routes.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Get("/me", h.GetMe)
	})
}

type registerRequest struct {
	Username     string `json:"username"`
	Role         string `json:"role"`
	Location     string `json:"location"`
	Name         string `json:"name"`
	CoverageArea string `json:"coverage_area"`
}

// Register creates a user and, for responders, their organization profile.
// Credential validation happens upstream; this endpoint only binds the
// identity cookie to the new account.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" {
		Error(w, http.StatusBadRequest, "username is required")
		return
	}
	role := domain.Role(req.Role)
	if role != domain.RoleRequester && role != domain.RoleResponder {
		Error(w, http.StatusBadRequest, "role must be requester or responder")
		return
	}
	if role == domain.RoleResponder && strings.TrimSpace(req.Name) == "" {
		Error(w, http.StatusBadRequest, "responder name is required")
		return
	}

	ctx := r.Context()
	existing, err := h.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		slog.Error("Failed to look up username", "error", err, "username", req.Username)
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if existing != nil {
		Error(w, http.StatusConflict, "username already taken")
		return
	}

	user, err := h.repo.CreateUser(ctx, &domain.User{
		Username: req.Username,
		Role:     role,
		Location: strings.TrimSpace(req.Location),
	})
	if err != nil {
		slog.Error("Failed to create user", "error", err, "username", req.Username)
		Error(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	var responder *domain.Responder
	if role == domain.RoleResponder {
		responder, err = h.repo.CreateResponder(ctx, &domain.Responder{
			UserID:       user.ID,
			Name:         strings.TrimSpace(req.Name),
			CoverageArea: strings.TrimSpace(req.CoverageArea),
		})
		if err != nil {
			slog.Error("Failed to create responder profile", "error", err, "user_id", user.ID)
			Error(w, http.StatusInternalServerError, "failed to create responder profile")
			return
		}
	}

	identity.SetCookie(w, user.ID, h.isDevelopment())
	slog.Info("User registered", "user_id", user.ID, "role", role)

	resp := map[string]interface{}{"user": user}
	if responder != nil {
		resp["responder"] = responder
	}
	JSON(w, http.StatusCreated, resp)
}

// GetMe returns the current user's information.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	p := principal(w, r)
	if p == nil {
		return
	}

	user, err := h.repo.GetUser(r.Context(), p.UserID)
	if err != nil || user == nil {
		Error(w, http.StatusUnauthorized, "user not found")
		return
	}

	resp := map[string]interface{}{"user": user}
	if user.IsResponder() {
		responder, err := h.repo.GetResponderByUser(r.Context(), user.ID)
		if err != nil {
			slog.Error("Failed to load responder profile", "error", err, "user_id", user.ID)
			Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		if responder != nil {
			resp["responder"] = responder
		}
	}
	JSON(w, http.StatusOK, resp)
}
