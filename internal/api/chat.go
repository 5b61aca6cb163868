package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rescuelink/rescuelink/internal/chat"
)

// ChatHandler handles per-request message threads.
type ChatHandler struct {
	*Handler
	chat *chat.Service
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(base *Handler, svc *chat.Service) *ChatHandler {
	return &ChatHandler{Handler: base, chat: svc}
}

// RegisterRoutes registers chat routes.
func (h *ChatHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/chat/{requestID}", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Send)
	})
}

func chatRequestID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "requestID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List returns the thread for a request, oldest first.
func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	p := principal(w, r)
	if p == nil {
		return
	}
	id, ok := chatRequestID(r)
	if !ok {
		Error(w, http.StatusBadRequest, "invalid request id")
		return
	}

	messages, err := h.chat.ListMessages(r.Context(), id, p.UserID)
	if err != nil {
		DomainError(w, err)
		return
	}
	JSON(w, http.StatusOK, messages)
}

type sendMessageRequest struct {
	Content     string `json:"content"`
	MessageType string `json:"message_type"`
}

// Send posts a message on a request's thread.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	p := principal(w, r)
	if p == nil {
		return
	}
	id, ok := chatRequestID(r)
	if !ok {
		Error(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req sendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.chat.SendMessage(r.Context(), id, p.UserID, req.Content, req.MessageType)
	if err != nil {
		DomainError(w, err)
		return
	}
	JSON(w, http.StatusCreated, message)
}
