package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rescuelink/rescuelink/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "rescuelink.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return repo
}

func createTestUser(t *testing.T, repo Repository, username string, role domain.Role) *domain.User {
	t.Helper()
	user, err := repo.CreateUser(context.Background(), &domain.User{
		Username: username,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", username, err)
	}
	return user
}

func createTestResponder(t *testing.T, repo Repository, username, name string) *domain.Responder {
	t.Helper()
	user := createTestUser(t, repo, username, domain.RoleResponder)
	responder, err := repo.CreateResponder(context.Background(), &domain.Responder{
		UserID: user.ID,
		Name:   name,
	})
	if err != nil {
		t.Fatalf("CreateResponder(%s) failed: %v", name, err)
	}
	return responder
}

func createPendingRequest(t *testing.T, repo Repository, userID int64) *domain.SosRequest {
	t.Helper()
	request, err := repo.CreateRequest(context.Background(), &domain.SosRequest{
		UserID:      userID,
		Category:    domain.CategoryMedical,
		Description: "chest pain",
		Location:    "5th and Main",
		Status:      domain.StatusPending,
	})
	if err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}
	return request
}

func TestCompareAndUpdateRequestStatus_SingleWinner(t *testing.T) {
	repo := newTestStore(t)
	requester := createTestUser(t, repo, "alice", domain.RoleRequester)
	request := createPendingRequest(t, repo, requester.ID)

	const approvers = 20
	var wg sync.WaitGroup
	wins := make(chan int64, approvers)
	losses := make(chan error, approvers)

	for i := 0; i < approvers; i++ {
		responder := createTestResponder(t, repo, fmt.Sprintf("org-user-%d", i), fmt.Sprintf("org-%d", i))
		wg.Add(1)
		go func(responderID int64) {
			defer wg.Done()
			updated, err := repo.CompareAndUpdateRequestStatus(context.Background(), request.ID, domain.StatusPending, RequestUpdate{
				Status:              domain.StatusApproved,
				AssignedResponderID: responderID,
			})
			if err != nil {
				losses <- err
				return
			}
			wins <- updated.AssignedResponderID
		}(responder.ID)
	}

	wg.Wait()
	close(wins)
	close(losses)

	var winners []int64
	for id := range wins {
		winners = append(winners, id)
	}
	if len(winners) != 1 {
		t.Fatalf("expected exactly 1 winner, got %d", len(winners))
	}

	lossCount := 0
	for err := range losses {
		if !errors.Is(err, domain.ErrAlreadyAssigned) {
			t.Errorf("expected ErrAlreadyAssigned, got %v", err)
		}
		lossCount++
	}
	if lossCount != approvers-1 {
		t.Fatalf("expected %d losers, got %d", approvers-1, lossCount)
	}

	final, err := repo.GetRequest(context.Background(), request.ID)
	if err != nil {
		t.Fatalf("GetRequest failed: %v", err)
	}
	if final.Status != domain.StatusApproved {
		t.Errorf("expected status approved, got %s", final.Status)
	}
	if final.AssignedResponderID != winners[0] {
		t.Errorf("expected assignment %d, got %d", winners[0], final.AssignedResponderID)
	}
}

func TestCompareAndUpdateRequestStatus_NotFound(t *testing.T) {
	repo := newTestStore(t)

	_, err := repo.CompareAndUpdateRequestStatus(context.Background(), 9999, domain.StatusPending, RequestUpdate{
		Status:              domain.StatusApproved,
		AssignedResponderID: 1,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompareAndUpdateRequestStatus_CompletedIsTerminal(t *testing.T) {
	repo := newTestStore(t)
	requester := createTestUser(t, repo, "alice", domain.RoleRequester)
	responder := createTestResponder(t, repo, "org-user", "Red Rescue")
	request := createPendingRequest(t, repo, requester.ID)

	ctx := context.Background()
	if _, err := repo.CompareAndUpdateRequestStatus(ctx, request.ID, domain.StatusPending, RequestUpdate{
		Status:              domain.StatusApproved,
		AssignedResponderID: responder.ID,
	}); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if _, err := repo.CompareAndUpdateRequestStatus(ctx, request.ID, domain.StatusApproved, RequestUpdate{
		Status: domain.StatusCompleted,
	}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	_, err := repo.CompareAndUpdateRequestStatus(ctx, request.ID, domain.StatusPending, RequestUpdate{
		Status:              domain.StatusApproved,
		AssignedResponderID: responder.ID,
	})
	if !errors.Is(err, domain.ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned after completion, got %v", err)
	}

	// Assignment must survive completion.
	final, err := repo.GetRequest(ctx, request.ID)
	if err != nil {
		t.Fatalf("GetRequest failed: %v", err)
	}
	if final.AssignedResponderID != responder.ID {
		t.Errorf("expected assignment %d preserved, got %d", responder.ID, final.AssignedResponderID)
	}
}

func TestAddResponderReward_Additive(t *testing.T) {
	repo := newTestStore(t)
	responder := createTestResponder(t, repo, "org-user", "Red Rescue")

	ctx := context.Background()
	const completions = 4
	for i := 0; i < completions; i++ {
		if err := repo.AddResponderReward(ctx, responder.ID, 15); err != nil {
			t.Fatalf("AddResponderReward failed: %v", err)
		}
	}

	got, err := repo.GetResponder(ctx, responder.ID)
	if err != nil {
		t.Fatalf("GetResponder failed: %v", err)
	}
	if got.Points != 15*completions {
		t.Errorf("expected %d points, got %d", 15*completions, got.Points)
	}
	if got.TotalRescues != completions {
		t.Errorf("expected %d rescues, got %d", completions, got.TotalRescues)
	}
}

func TestAddResponderReward_UnknownResponder(t *testing.T) {
	repo := newTestStore(t)
	if err := repo.AddResponderReward(context.Background(), 42, 15); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListResponders_SortedByPoints(t *testing.T) {
	repo := newTestStore(t)
	low := createTestResponder(t, repo, "low-user", "Low Org")
	high := createTestResponder(t, repo, "high-user", "High Org")

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := repo.AddResponderReward(ctx, high.ID, 15); err != nil {
			t.Fatalf("AddResponderReward failed: %v", err)
		}
	}
	if err := repo.AddResponderReward(ctx, low.ID, 15); err != nil {
		t.Fatalf("AddResponderReward failed: %v", err)
	}

	responders, err := repo.ListResponders(ctx)
	if err != nil {
		t.Fatalf("ListResponders failed: %v", err)
	}
	if len(responders) != 2 {
		t.Fatalf("expected 2 responders, got %d", len(responders))
	}
	if responders[0].ID != high.ID {
		t.Errorf("expected %q first on the leaderboard, got %q", high.Name, responders[0].Name)
	}
}

func TestListMessages_InsertionOrder(t *testing.T) {
	repo := newTestStore(t)
	requester := createTestUser(t, repo, "alice", domain.RoleRequester)
	request := createPendingRequest(t, repo, requester.ID)

	ctx := context.Background()
	bodies := []string{"help, where are you", "2 minutes away", "hurry please"}
	for _, body := range bodies {
		if _, err := repo.CreateMessage(ctx, &domain.ChatMessage{
			SosRequestID: request.ID,
			SenderID:     requester.ID,
			Content:      body,
		}); err != nil {
			t.Fatalf("CreateMessage failed: %v", err)
		}
	}

	messages, err := repo.ListMessages(ctx, request.ID)
	if err != nil {
		t.Fatalf("ListMessages failed: %v", err)
	}
	if len(messages) != len(bodies) {
		t.Fatalf("expected %d messages, got %d", len(bodies), len(messages))
	}
	for i, message := range messages {
		if message.Content != bodies[i] {
			t.Errorf("message %d: expected %q, got %q", i, bodies[i], message.Content)
		}
		if message.MessageType != domain.MessageTypeText {
			t.Errorf("message %d: expected default type text, got %q", i, message.MessageType)
		}
	}
}

func TestListRequests_NewestFirst(t *testing.T) {
	repo := newTestStore(t)
	requester := createTestUser(t, repo, "alice", domain.RoleRequester)

	first := createPendingRequest(t, repo, requester.ID)
	second := createPendingRequest(t, repo, requester.ID)

	pending, err := repo.ListRequestsByStatus(context.Background(), domain.StatusPending)
	if err != nil {
		t.Fatalf("ListRequestsByStatus failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending requests, got %d", len(pending))
	}
	if pending[0].ID != second.ID || pending[1].ID != first.ID {
		t.Errorf("expected newest-first order [%d %d], got [%d %d]",
			second.ID, first.ID, pending[0].ID, pending[1].ID)
	}

	own, err := repo.ListRequestsByUser(context.Background(), requester.ID)
	if err != nil {
		t.Fatalf("ListRequestsByUser failed: %v", err)
	}
	if len(own) != 2 || own[0].ID != second.ID {
		t.Errorf("expected user's requests newest first, got %+v", own)
	}
}
