package live

import (
	"context"
	"fmt"
	"sync"
	"testing"
)

// newTestClient attaches a client without a real socket; events land in the
// send queue where tests can inspect them.
func newTestClient(h *Hub, userID int64, isResponder bool) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		UserID:      userID,
		IsResponder: isResponder,
		send:        make(chan Event, 64),
		ctx:         ctx,
		cancel:      cancel,
	}
	h.track(c)
	return c
}

func TestHub_JoinAndLeave(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, 1, false)

	room := RequestRoom(42)
	h.Join(room, c)
	if !h.InRoom(room, c) {
		t.Fatal("expected client to be in room after join")
	}

	h.Leave(room, c)
	if h.InRoom(room, c) {
		t.Fatal("expected client to be out of room after leave")
	}
}

func TestHub_LeaveUnjoinedRoomIsNoop(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, 1, false)

	h.Leave(UserRoom(99), c)

	if h.MemberCount(UserRoom(99)) != 0 {
		t.Fatal("expected empty room after no-op leave")
	}
}

func TestHub_RemoveDetachesFromAllRooms(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, 1, true)

	rooms := []string{UserRoom(1), RespondersRoom, RequestRoom(7)}
	for _, room := range rooms {
		h.Join(room, c)
	}

	h.Remove(c)

	for _, room := range rooms {
		if h.MemberCount(room) != 0 {
			t.Errorf("room %s still has members after remove", room)
		}
	}

	// A join racing with disconnect must not resurrect the client.
	h.Join(RespondersRoom, c)
	if h.MemberCount(RespondersRoom) != 0 {
		t.Error("removed client rejoined a room")
	}
}

func TestHub_BroadcastReachesOnlyRoomMembers(t *testing.T) {
	h := NewHub()
	member := newTestClient(h, 1, false)
	outsider := newTestClient(h, 2, false)

	room := RequestRoom(3)
	h.Join(room, member)

	h.Broadcast(room, Event{Type: "new_message"})

	select {
	case ev := <-member.send:
		if ev.Type != "new_message" {
			t.Errorf("expected new_message, got %s", ev.Type)
		}
	default:
		t.Fatal("expected member to receive the event")
	}

	select {
	case ev := <-outsider.send:
		t.Fatalf("outsider received unexpected event %s", ev.Type)
	default:
	}
}

func TestHub_BroadcastToEmptyRoomDropsEvent(t *testing.T) {
	h := NewHub()
	// No members: must not panic or queue anywhere.
	h.Broadcast(UserRoom(123), Event{Type: "request_approved"})
}

func TestHub_BroadcastOrderPerRoom(t *testing.T) {
	h := NewHub()
	c := newTestClient(h, 1, false)
	room := RequestRoom(5)
	h.Join(room, c)

	const n = 50
	for i := 0; i < n; i++ {
		h.Broadcast(room, Event{Type: "new_message", Data: i})
	}

	for i := 0; i < n; i++ {
		ev := <-c.send
		if ev.Data.(int) != i {
			t.Fatalf("event %d arrived out of order: got %v", i, ev.Data)
		}
	}
}

func TestHub_ConcurrentAccess(t *testing.T) {
	h := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				c := newTestClient(h, int64(n*1000+j), false)
				room := RequestRoom(int64(j % 10))
				h.Join(room, c)
				h.Broadcast(room, Event{Type: "new_message", Data: fmt.Sprintf("%d-%d", n, j)})
				h.Remove(c)
			}
		}(i)
	}
	wg.Wait()

	for j := 0; j < 10; j++ {
		if count := h.MemberCount(RequestRoom(int64(j))); count != 0 {
			t.Errorf("room %d still has %d members", j, count)
		}
	}
}
