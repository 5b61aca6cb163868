package lifecycle

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rescuelink/rescuelink/internal/domain"
	"github.com/rescuelink/rescuelink/internal/store"
	"github.com/rescuelink/rescuelink/internal/triage"
)

type recordingSink struct {
	mu       sync.Mutex
	created  []*domain.SosRequest
	approved []*domain.SosRequest
}

func (r *recordingSink) RequestCreated(request *domain.SosRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, request)
}

func (r *recordingSink) RequestApproved(request *domain.SosRequest) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.approved = append(r.approved, request)
}

func (r *recordingSink) approvedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.approved)
}

type fakeClassifier struct {
	assessment *triage.Assessment
	err        error
}

func (f *fakeClassifier) Classify(_ context.Context, _ string) (*triage.Assessment, error) {
	return f.assessment, f.err
}

type fixture struct {
	repo      store.Repository
	sink      *recordingSink
	svc       *Service
	requester *domain.User
}

func newFixture(t *testing.T, classifier triage.Classifier) *fixture {
	t.Helper()
	repo, err := store.NewSQLite(filepath.Join(t.TempDir(), "rescuelink.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})

	requester, err := repo.CreateUser(context.Background(), &domain.User{
		Username: "alice",
		Role:     domain.RoleRequester,
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	sink := &recordingSink{}
	return &fixture{
		repo:      repo,
		sink:      sink,
		svc:       NewService(repo, sink, classifier),
		requester: requester,
	}
}

func (f *fixture) addResponder(t *testing.T, username, name string) (*domain.User, *domain.Responder) {
	t.Helper()
	user, err := f.repo.CreateUser(context.Background(), &domain.User{
		Username: username,
		Role:     domain.RoleResponder,
	})
	if err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", username, err)
	}
	responder, err := f.repo.CreateResponder(context.Background(), &domain.Responder{
		UserID: user.ID,
		Name:   name,
	})
	if err != nil {
		t.Fatalf("CreateResponder(%s) failed: %v", name, err)
	}
	return user, responder
}

func (f *fixture) createRequest(t *testing.T) *domain.SosRequest {
	t.Helper()
	request, err := f.svc.CreateRequest(context.Background(), f.requester.ID, CreateInput{
		Category:    domain.CategoryMedical,
		Description: "chest pain",
		Location:    "5th and Main",
	})
	if err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}
	return request
}

func TestCreateRequest_EmitsEventAndStartsPending(t *testing.T) {
	f := newFixture(t, nil)

	request := f.createRequest(t)

	if request.Status != domain.StatusPending {
		t.Errorf("expected pending, got %s", request.Status)
	}
	if request.Assigned() {
		t.Errorf("new request must be unassigned, got responder %d", request.AssignedResponderID)
	}
	if len(f.sink.created) != 1 || f.sink.created[0].ID != request.ID {
		t.Errorf("expected one created event for request %d, got %+v", request.ID, f.sink.created)
	}
}

func TestCreateRequest_ClassifierFillsCategoryAndPriority(t *testing.T) {
	f := newFixture(t, &fakeClassifier{assessment: &triage.Assessment{
		Category:      domain.CategoryFire,
		PriorityScore: 870,
		Rationale:     "visible flames and trapped occupants",
	}})

	request, err := f.svc.CreateRequest(context.Background(), f.requester.ID, CreateInput{
		Description: "my kitchen is on fire",
		Location:    "12 Oak Lane",
	})
	if err != nil {
		t.Fatalf("CreateRequest failed: %v", err)
	}

	if request.Category != domain.CategoryFire {
		t.Errorf("expected classifier category fire, got %s", request.Category)
	}
	if request.PriorityScore != 870 {
		t.Errorf("expected priority 870, got %d", request.PriorityScore)
	}
}

func TestCreateRequest_ClassifierFailureFallsBackToOther(t *testing.T) {
	f := newFixture(t, &fakeClassifier{err: errors.New("triage unavailable")})

	request, err := f.svc.CreateRequest(context.Background(), f.requester.ID, CreateInput{
		Description: "need help",
		Location:    "somewhere",
	})
	if err != nil {
		t.Fatalf("CreateRequest must not fail when triage is down: %v", err)
	}
	if request.Category != domain.CategoryOther {
		t.Errorf("expected fallback category other, got %s", request.Category)
	}
	if request.PriorityScore != 0 {
		t.Errorf("expected no priority on triage failure, got %d", request.PriorityScore)
	}
}

func TestCreateRequest_Validation(t *testing.T) {
	f := newFixture(t, nil)
	responderUser, _ := f.addResponder(t, "org-user", "Red Rescue")

	cases := []struct {
		name   string
		userID int64
		input  CreateInput
		want   error
	}{
		{"empty description", f.requester.ID, CreateInput{Location: "x"}, domain.ErrValidation},
		{"empty location", f.requester.ID, CreateInput{Description: "x"}, domain.ErrValidation},
		{"unknown category", f.requester.ID, CreateInput{Category: "ufo", Description: "x", Location: "y"}, domain.ErrValidation},
		{"unknown user", 9999, CreateInput{Description: "x", Location: "y"}, domain.ErrNotFound},
		{"responder principal", responderUser.ID, CreateInput{Description: "x", Location: "y"}, domain.ErrNotAuthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.svc.CreateRequest(context.Background(), tc.userID, tc.input); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestApproveRequest_RequesterIsNotAuthorized(t *testing.T) {
	f := newFixture(t, nil)
	request := f.createRequest(t)

	_, err := f.svc.ApproveRequest(context.Background(), request.ID, f.requester.ID)
	if !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestApproveRequest_ConcurrentSingleWinner(t *testing.T) {
	f := newFixture(t, nil)
	request := f.createRequest(t)

	const contenders = 10
	type contender struct {
		user      *domain.User
		responder *domain.Responder
	}
	racers := make([]contender, contenders)
	for i := range racers {
		user, responder := f.addResponder(t,
			"org-user-"+string(rune('a'+i)), "Org "+string(rune('A'+i)))
		racers[i] = contender{user: user, responder: responder}
	}

	var wg sync.WaitGroup
	wins := make(chan int64, contenders)
	losses := make(chan error, contenders)
	for _, racer := range racers {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			updated, err := f.svc.ApproveRequest(context.Background(), request.ID, userID)
			if err != nil {
				losses <- err
				return
			}
			wins <- updated.AssignedResponderID
		}(racer.user.ID)
	}
	wg.Wait()
	close(wins)
	close(losses)

	var winners []int64
	for id := range wins {
		winners = append(winners, id)
	}
	if len(winners) != 1 {
		t.Fatalf("expected exactly 1 winning approval, got %d", len(winners))
	}
	for err := range losses {
		if !errors.Is(err, domain.ErrAlreadyAssigned) {
			t.Errorf("loser expected ErrAlreadyAssigned, got %v", err)
		}
	}

	final, err := f.repo.GetRequest(context.Background(), request.ID)
	if err != nil {
		t.Fatalf("GetRequest failed: %v", err)
	}
	if final.Status != domain.StatusApproved || final.AssignedResponderID != winners[0] {
		t.Errorf("final state %s/%d does not match the single winner %d",
			final.Status, final.AssignedResponderID, winners[0])
	}
	if f.sink.approvedCount() != 1 {
		t.Errorf("expected exactly one approved event, got %d", f.sink.approvedCount())
	}
}

func TestCompleteRequest_OnlyAssignedResponder(t *testing.T) {
	f := newFixture(t, nil)
	winnerUser, _ := f.addResponder(t, "winner-user", "Winner Org")
	otherUser, _ := f.addResponder(t, "other-user", "Other Org")
	request := f.createRequest(t)

	ctx := context.Background()

	// Not assigned yet: nobody may complete, whatever the status.
	if err := f.svc.CompleteRequest(ctx, request.ID, winnerUser.ID); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized on pending request, got %v", err)
	}

	if _, err := f.svc.ApproveRequest(ctx, request.ID, winnerUser.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	if err := f.svc.CompleteRequest(ctx, request.ID, otherUser.ID); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for non-assigned responder, got %v", err)
	}
	if err := f.svc.CompleteRequest(ctx, request.ID, f.requester.ID); !errors.Is(err, domain.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized for requester, got %v", err)
	}

	if err := f.svc.CompleteRequest(ctx, request.ID, winnerUser.ID); err != nil {
		t.Fatalf("assigned responder should complete: %v", err)
	}
}

func TestCompletedRequestIsTerminal(t *testing.T) {
	f := newFixture(t, nil)
	winnerUser, _ := f.addResponder(t, "winner-user", "Winner Org")
	request := f.createRequest(t)

	ctx := context.Background()
	if _, err := f.svc.ApproveRequest(ctx, request.ID, winnerUser.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if err := f.svc.CompleteRequest(ctx, request.ID, winnerUser.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	if _, err := f.svc.ApproveRequest(ctx, request.ID, winnerUser.ID); !errors.Is(err, domain.ErrAlreadyAssigned) {
		t.Errorf("expected ErrAlreadyAssigned approving a completed request, got %v", err)
	}
	if err := f.svc.CompleteRequest(ctx, request.ID, winnerUser.ID); !errors.Is(err, domain.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState completing twice, got %v", err)
	}
}

func TestRescueScenario_PointsAwardedOnce(t *testing.T) {
	f := newFixture(t, nil)
	user1, responder1 := f.addResponder(t, "o1-user", "O1")
	user2, responder2 := f.addResponder(t, "o2-user", "O2")
	request := f.createRequest(t)

	ctx := context.Background()
	var winnerUser *domain.User
	var winnerOrg *domain.Responder
	_, err1 := f.svc.ApproveRequest(ctx, request.ID, user1.ID)
	_, err2 := f.svc.ApproveRequest(ctx, request.ID, user2.ID)
	switch {
	case err1 == nil && errors.Is(err2, domain.ErrAlreadyAssigned):
		winnerUser, winnerOrg = user1, responder1
	case err2 == nil && errors.Is(err1, domain.ErrAlreadyAssigned):
		winnerUser, winnerOrg = user2, responder2
	default:
		t.Fatalf("expected one winner and one ErrAlreadyAssigned, got %v / %v", err1, err2)
	}

	if err := f.svc.CompleteRequest(ctx, request.ID, winnerUser.ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	got, err := f.repo.GetResponder(ctx, winnerOrg.ID)
	if err != nil {
		t.Fatalf("GetResponder failed: %v", err)
	}
	if got.Points != RewardPoints {
		t.Errorf("expected %d points, got %d", RewardPoints, got.Points)
	}
	if got.TotalRescues != 1 {
		t.Errorf("expected 1 rescue, got %d", got.TotalRescues)
	}
}

func TestListRequests_RoleDependentView(t *testing.T) {
	f := newFixture(t, nil)
	responderUser, _ := f.addResponder(t, "org-user", "Red Rescue")
	first := f.createRequest(t)
	second := f.createRequest(t)

	ctx := context.Background()
	if _, err := f.svc.ApproveRequest(ctx, first.ID, responderUser.ID); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	pending, err := f.svc.ListRequests(ctx, responderUser.ID)
	if err != nil {
		t.Fatalf("ListRequests(responder) failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != second.ID {
		t.Errorf("responder should see only the pending request %d, got %+v", second.ID, pending)
	}

	own, err := f.svc.ListRequests(ctx, f.requester.ID)
	if err != nil {
		t.Fatalf("ListRequests(requester) failed: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("requester should see both requests, got %d", len(own))
	}
	if own[0].ID != second.ID || own[1].ID != first.ID {
		t.Errorf("expected newest-first [%d %d], got [%d %d]", second.ID, first.ID, own[0].ID, own[1].ID)
	}
}
