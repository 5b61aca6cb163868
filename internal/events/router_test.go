package events

import (
	"testing"

	"github.com/rescuelink/rescuelink/internal/domain"
	"github.com/rescuelink/rescuelink/internal/live"
)

type broadcastCall struct {
	room string
	ev   live.Event
}

type recordingBroadcaster struct {
	calls []broadcastCall
}

func (r *recordingBroadcaster) Broadcast(room string, ev live.Event) {
	r.calls = append(r.calls, broadcastCall{room: room, ev: ev})
}

func TestRouterTargetsRespondersRoomOnCreate(t *testing.T) {
	hub := &recordingBroadcaster{}
	router := NewRouter(hub)

	request := &domain.SosRequest{ID: 7, UserID: 3, Status: domain.StatusPending}
	router.RequestCreated(request)

	if len(hub.calls) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(hub.calls))
	}
	if hub.calls[0].room != live.RespondersRoom {
		t.Errorf("expected responders room, got %s", hub.calls[0].room)
	}
	if hub.calls[0].ev.Type != EventRequestCreated {
		t.Errorf("expected %s, got %s", EventRequestCreated, hub.calls[0].ev.Type)
	}
}

func TestRouterTargetsRequesterRoomOnApprove(t *testing.T) {
	hub := &recordingBroadcaster{}
	router := NewRouter(hub)

	request := &domain.SosRequest{ID: 7, UserID: 3, Status: domain.StatusApproved, AssignedResponderID: 2}
	router.RequestApproved(request)

	if len(hub.calls) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(hub.calls))
	}
	if want := live.UserRoom(3); hub.calls[0].room != want {
		t.Errorf("expected room %s, got %s", want, hub.calls[0].room)
	}
	if hub.calls[0].ev.Type != EventRequestApproved {
		t.Errorf("expected %s, got %s", EventRequestApproved, hub.calls[0].ev.Type)
	}
}

func TestRouterTargetsRequestRoomOnMessage(t *testing.T) {
	hub := &recordingBroadcaster{}
	router := NewRouter(hub)

	message := &domain.ChatMessage{ID: 11, SosRequestID: 7, SenderID: 3, Content: "help"}
	router.MessageSent(message)

	if len(hub.calls) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(hub.calls))
	}
	if want := live.RequestRoom(7); hub.calls[0].room != want {
		t.Errorf("expected room %s, got %s", want, hub.calls[0].room)
	}
	if hub.calls[0].ev.Type != EventNewMessage {
		t.Errorf("expected %s, got %s", EventNewMessage, hub.calls[0].ev.Type)
	}
}
