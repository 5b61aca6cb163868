package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/coder/websocket"
	"github.com/rescuelink/rescuelink/internal/domain"
	"github.com/rescuelink/rescuelink/internal/identity"
	"github.com/rescuelink/rescuelink/internal/store"
)

// Handler upgrades HTTP requests to WebSocket connections and manages room
// membership for the connection's lifetime.
type Handler struct {
	repo          store.Repository
	hub           *Hub
	allowedOrigin string
	isDev         bool
}

// NewHandler creates a new live-channel handler.
func NewHandler(repo store.Repository, hub *Hub, allowedOrigin string, isDev bool) *Handler {
	return &Handler{
		repo:          repo,
		hub:           hub,
		allowedOrigin: allowedOrigin,
		isDev:         isDev,
	}
}

// clientMessage is what clients send over the socket.
type clientMessage struct {
	Type string `json:"type"`
	Room string `json:"room,omitempty"`
}

// ServeHTTP implements http.Handler for WebSocket upgrade.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal := identity.FromContext(r.Context())
	if principal == nil {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}
	slog.Info("WebSocket connection request", "user_id", principal.UserID, "role", principal.Role, "ip", r.RemoteAddr)

	if !h.checkOrigin(r) {
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Error("Failed to accept WebSocket", "error", err, "user_id", principal.UserID)
		return
	}

	client := h.hub.Register(principal.UserID, principal.Role == domain.RoleResponder, ws)
	defer h.hub.Remove(client)

	// Every connection listens on its personal room; responders also hear
	// about new requests in the shared responders room.
	h.hub.Join(UserRoom(principal.UserID), client)
	if client.IsResponder {
		h.hub.Join(RespondersRoom, client)
	}

	h.readLoop(r.Context(), ws, client)
	slog.Info("WebSocket connection closed", "user_id", principal.UserID)
}

func (h *Handler) checkOrigin(r *http.Request) bool {
	if h.isDev {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" || h.allowedOrigin == "*" {
		return true
	}
	if origin == h.allowedOrigin {
		return true
	}
	slog.Warn("WebSocket origin rejected", "origin", origin, "allowed", h.allowedOrigin)
	return false
}

func (h *Handler) readLoop(ctx context.Context, ws *websocket.Conn, client *Client) {
	for {
		_, message, err := ws.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				slog.Debug("WebSocket closed by client", "user_id", client.UserID)
			} else {
				slog.Debug("WebSocket read error", "error", err, "user_id", client.UserID)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			slog.Debug("Ignoring malformed client message", "user_id", client.UserID)
			continue
		}

		switch msg.Type {
		case "join":
			if err := h.authorizeJoin(ctx, msg.Room, client); err != nil {
				slog.Warn("Room join rejected", "room", msg.Room, "user_id", client.UserID, "error", err)
				client.enqueue(Event{Type: "error", Data: map[string]string{"message": "cannot join room"}})
				continue
			}
			h.hub.Join(msg.Room, client)
		case "leave":
			h.hub.Leave(msg.Room, client)
		case "ping":
			client.enqueue(Event{Type: "pong"})
		}
	}
}

// authorizeJoin decides whether a client may listen on a room. Request rooms
// are limited to the requester and the assigned responder's principal.
func (h *Handler) authorizeJoin(ctx context.Context, room string, client *Client) error {
	switch {
	case room == RespondersRoom:
		if !client.IsResponder {
			return domain.ErrNotAuthorized
		}
		return nil
	case room == UserRoom(client.UserID):
		return nil
	case strings.HasPrefix(room, "request:"):
		requestID, err := strconv.ParseInt(strings.TrimPrefix(room, "request:"), 10, 64)
		if err != nil {
			return domain.ErrValidation
		}
		return h.authorizeRequestRoom(ctx, requestID, client)
	default:
		return domain.ErrNotAuthorized
	}
}

func (h *Handler) authorizeRequestRoom(ctx context.Context, requestID int64, client *Client) error {
	request, err := h.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request == nil {
		return domain.ErrNotFound
	}
	if request.UserID == client.UserID {
		return nil
	}
	if !request.Assigned() {
		return domain.ErrNotAuthorized
	}

	responder, err := h.repo.GetResponderByUser(ctx, client.UserID)
	if err != nil {
		return err
	}
	if responder == nil || responder.ID != request.AssignedResponderID {
		return domain.ErrNotAuthorized
	}
	return nil
}

func (c *Client) enqueue(ev Event) {
	select {
	case c.send <- ev:
	default:
	}
}
