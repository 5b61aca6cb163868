// Package live provides WebSocket-based room membership and event delivery.
package live

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// RespondersRoom is the shared room every connected responder joins. New
// assistance requests are announced here instead of per-coverage-area rooms.
const RespondersRoom = "responders"

// RequestRoom returns the room key scoping one request's conversation.
func RequestRoom(requestID int64) string {
	return "request:" + strconv.FormatInt(requestID, 10)
}

// UserRoom returns a user's personal room key.
func UserRoom(userID int64) string {
	return "user:" + strconv.FormatInt(userID, 10)
}

// Event is a named payload delivered to every member of a room.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// Client is one live connection. A client may belong to any number of rooms
// at once; its send queue decouples room fan-out from socket writes.
type Client struct {
	UserID      int64
	IsResponder bool

	conn *websocket.Conn
	send chan Event

	ctx    context.Context
	cancel context.CancelFunc
}

// Hub tracks which clients belong to which rooms. All membership state is
// owned here and reached only through Join/Leave/Remove/Broadcast; the maps
// are never handed out.
type Hub struct {
	mu      sync.Mutex
	rooms   map[string]map[*Client]struct{}
	members map[*Client]map[string]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		rooms:   make(map[string]map[*Client]struct{}),
		members: make(map[*Client]map[string]struct{}),
	}
}

// Register attaches a connection to the hub and starts its write and
// keepalive loops. The returned client belongs to no rooms yet.
func (h *Hub) Register(userID int64, isResponder bool, conn *websocket.Conn) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		UserID:      userID,
		IsResponder: isResponder,
		conn:        conn,
		send:        make(chan Event, 64),
		ctx:         ctx,
		cancel:      cancel,
	}

	h.track(c)

	go c.writeLoop()
	go c.keepAliveLoop()

	return c
}

func (h *Hub) track(c *Client) {
	h.mu.Lock()
	h.members[c] = make(map[string]struct{})
	h.mu.Unlock()
}

// Join adds a client to a room. Joining a room twice is a no-op.
func (h *Hub) Join(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, known := h.members[c]; !known {
		// Client already removed; a late join must not resurrect it.
		return
	}
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}
	h.members[c][room] = struct{}{}
}

// Leave removes a client from a room. Leaving a room the client never
// joined is a no-op, not an error.
func (h *Hub) Leave(room string, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.leaveLocked(room, c)
}

func (h *Hub) leaveLocked(room string, c *Client) {
	if set, ok := h.rooms[room]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.rooms, room)
		}
	}
	if rooms, ok := h.members[c]; ok {
		delete(rooms, room)
	}
}

// Remove detaches a client from every room it belongs to and closes the
// connection. Called on disconnect; afterwards no room holds a reference.
func (h *Hub) Remove(c *Client) {
	c.cancel()

	h.mu.Lock()
	for room := range h.members[c] {
		h.leaveLocked(room, c)
	}
	delete(h.members, c)
	h.mu.Unlock()

	if c.conn != nil {
		_ = c.conn.Close(websocket.StatusNormalClosure, "connection closed")
	}
}

// InRoom reports whether the client currently belongs to the room.
func (h *Hub) InRoom(room string, c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.rooms[room][c]
	return ok
}

// MemberCount returns the number of clients currently in the room.
func (h *Hub) MemberCount(room string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[room])
}

// Broadcast enqueues an event for every member of a room. Delivery is
// best-effort: an empty room drops the event, and a client whose send queue
// is full misses it and reconciles over HTTP on reconnect. Holding the hub
// lock for the whole fan-out keeps per-room delivery in arrival order.
func (h *Hub) Broadcast(room string, ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.rooms[room] {
		select {
		case c.send <- ev:
		default:
			slog.Warn("dropping event for slow client", "room", room, "event", ev.Type, "user_id", c.UserID)
		}
	}
}

func (c *Client) writeLoop() {
	for {
		select {
		case <-c.ctx.Done():
			return
		case ev := <-c.send:
			writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := wsjson.Write(writeCtx, c.conn, ev); err != nil {
				slog.Debug("WebSocket write failed", "error", err, "user_id", c.UserID)
			}
			cancel()
		}
	}
}

func (c *Client) keepAliveLoop() {
	ticker := time.NewTicker(25 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = c.conn.Ping(pingCtx)
			cancel()
		}
	}
}
