// Package events translates domain events into room-scoped broadcasts.
package events

import (
	"log/slog"

	"github.com/rescuelink/rescuelink/internal/domain"
	"github.com/rescuelink/rescuelink/internal/live"
)

// Wire event names delivered to live-channel clients.
const (
	EventRequestCreated  = "request_created"
	EventRequestApproved = "request_approved"
	EventNewMessage      = "new_message"
)

// Broadcaster delivers an event to every member of a room.
type Broadcaster interface {
	Broadcast(room string, ev live.Event)
}

// Router is the single dispatch point between business rules and the live
// channel: services report what happened, the router decides which room
// hears about it. Delivery is best-effort; a room with no members drops the
// event and clients reconcile over HTTP on reconnect.
type Router struct {
	hub Broadcaster
}

// NewRouter creates a router publishing through the given broadcaster.
func NewRouter(hub Broadcaster) *Router {
	return &Router{hub: hub}
}

// RequestCreated announces a new assistance request to all connected
// responders.
func (r *Router) RequestCreated(request *domain.SosRequest) {
	slog.Debug("fan-out request_created", "request_id", request.ID)
	r.hub.Broadcast(live.RespondersRoom, live.Event{Type: EventRequestCreated, Data: request})
}

// RequestApproved tells the requester their request was picked up.
func (r *Router) RequestApproved(request *domain.SosRequest) {
	slog.Debug("fan-out request_approved", "request_id", request.ID, "user_id", request.UserID)
	r.hub.Broadcast(live.UserRoom(request.UserID), live.Event{Type: EventRequestApproved, Data: request})
}

// MessageSent delivers a chat message to the request's room.
func (r *Router) MessageSent(message *domain.ChatMessage) {
	slog.Debug("fan-out new_message", "request_id", message.SosRequestID, "message_id", message.ID)
	r.hub.Broadcast(live.RequestRoom(message.SosRequestID), live.Event{Type: EventNewMessage, Data: message})
}
