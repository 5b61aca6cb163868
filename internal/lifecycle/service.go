// Package lifecycle owns the assistance-request state machine: which
// transitions are legal, who may perform them, and what gets announced
// when they happen.
package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rescuelink/rescuelink/internal/domain"
	"github.com/rescuelink/rescuelink/internal/shared"
	"github.com/rescuelink/rescuelink/internal/store"
	"github.com/rescuelink/rescuelink/internal/triage"
)

// RewardPoints is the fixed award for a completed rescue.
const RewardPoints = 15

// EventSink receives lifecycle events for fan-out to live clients.
type EventSink interface {
	RequestCreated(request *domain.SosRequest)
	RequestApproved(request *domain.SosRequest)
}

// Service implements the request lifecycle operations.
type Service struct {
	repo       store.Repository
	events     EventSink
	classifier triage.Classifier // nil when triage is disabled

	maxRetries     int
	retryBaseDelay time.Duration
}

// NewService creates a lifecycle service. classifier may be nil.
func NewService(repo store.Repository, events EventSink, classifier triage.Classifier) *Service {
	return &Service{
		repo:           repo,
		events:         events,
		classifier:     classifier,
		maxRetries:     3,
		retryBaseDelay: 50 * time.Millisecond,
	}
}

// SetRetryPolicy overrides the transient-conflict retry settings.
func (s *Service) SetRetryPolicy(maxRetries int, baseDelay time.Duration) {
	if maxRetries > 0 {
		s.maxRetries = maxRetries
	}
	if baseDelay > 0 {
		s.retryBaseDelay = baseDelay
	}
}

// CreateInput is the payload for a new assistance request.
type CreateInput struct {
	Category    string
	Description string
	Location    string
}

// CreateRequest validates and stores a new pending request, enriches it via
// the triage service when available, and announces it to responders.
// Classification failures never block creation: the request falls back to
// the caller's category or "other", with no priority score.
func (s *Service) CreateRequest(ctx context.Context, userID int64, input CreateInput) (*domain.SosRequest, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if user.Role != domain.RoleRequester {
		return nil, domain.ErrNotAuthorized
	}

	if input.Description == "" || input.Location == "" {
		return nil, domain.ErrValidation
	}
	if input.Category != "" && !domain.KnownCategory(input.Category) {
		return nil, domain.ErrValidation
	}

	request := &domain.SosRequest{
		UserID:      userID,
		Category:    input.Category,
		Description: input.Description,
		Location:    input.Location,
		Status:      domain.StatusPending,
	}

	if s.classifier != nil {
		assessment, err := s.classifier.Classify(ctx, input.Description)
		if err != nil {
			slog.Warn("Triage classification failed, proceeding without it", "error", err, "user_id", userID)
		} else {
			if request.Category == "" {
				request.Category = assessment.Category
			}
			request.PriorityScore = assessment.PriorityScore
			request.PriorityReason = assessment.Rationale
		}
	}
	if request.Category == "" {
		request.Category = domain.CategoryOther
	}

	created, err := s.repo.CreateRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	slog.Info("Assistance request created", "request_id", created.ID, "user_id", userID, "category", created.Category)
	s.events.RequestCreated(created)
	return created, nil
}

// ApproveRequest assigns a pending request to the caller's responder
// organization. The repository's conditional update is the only
// serialization point: under concurrent approvals exactly one caller gets
// the updated request, everyone else gets ErrAlreadyAssigned.
func (s *Service) ApproveRequest(ctx context.Context, requestID, userID int64) (*domain.SosRequest, error) {
	responder, err := s.repo.GetResponderByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if responder == nil {
		return nil, domain.ErrNotAuthorized
	}

	updated, err := s.compareAndUpdateWithRetry(ctx, requestID, domain.StatusPending, store.RequestUpdate{
		Status:              domain.StatusApproved,
		AssignedResponderID: responder.ID,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Assistance request approved", "request_id", requestID, "responder_id", responder.ID)
	s.events.RequestApproved(updated)
	return updated, nil
}

// CompleteRequest finishes an approved request and awards the assigned
// responder its points. Only the assigned responder may complete, whatever
// the request's status.
func (s *Service) CompleteRequest(ctx context.Context, requestID, userID int64) error {
	responder, err := s.repo.GetResponderByUser(ctx, userID)
	if err != nil {
		return err
	}
	if responder == nil {
		return domain.ErrNotAuthorized
	}

	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if request == nil {
		return domain.ErrNotFound
	}
	if request.AssignedResponderID != responder.ID {
		return domain.ErrNotAuthorized
	}
	if request.Status != domain.StatusApproved {
		return domain.ErrInvalidState
	}

	if _, err := s.compareAndUpdateWithRetry(ctx, requestID, domain.StatusApproved, store.RequestUpdate{
		Status: domain.StatusCompleted,
	}); err != nil {
		// A concurrent completion got there first.
		if errors.Is(err, domain.ErrAlreadyAssigned) {
			return domain.ErrInvalidState
		}
		return err
	}

	if err := s.repo.AddResponderReward(ctx, responder.ID, RewardPoints); err != nil {
		return err
	}

	slog.Info("Rescue completed, points awarded",
		"request_id", requestID, "responder_id", responder.ID, "points", RewardPoints)
	return nil
}

// ListRequests returns the caller's view of the request pool: responders
// see all pending requests, requesters see their own, both newest first.
func (s *Service) ListRequests(ctx context.Context, userID int64) ([]*domain.SosRequest, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if user.IsResponder() {
		return s.repo.ListRequestsByStatus(ctx, domain.StatusPending)
	}
	return s.repo.ListRequestsByUser(ctx, userID)
}

// GetRequest retrieves a single request.
func (s *Service) GetRequest(ctx context.Context, requestID int64) (*domain.SosRequest, error) {
	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}
	return request, nil
}

// compareAndUpdateWithRetry retries the conditional update on transient
// SQLite conflicts with exponential backoff. Domain failures (lost race,
// missing request) are returned immediately.
func (s *Service) compareAndUpdateWithRetry(ctx context.Context, requestID int64, expected domain.RequestStatus, update store.RequestUpdate) (*domain.SosRequest, error) {
	var lastErr error
	for i := 0; i < s.maxRetries; i++ {
		updated, err := s.repo.CompareAndUpdateRequestStatus(ctx, requestID, expected, update)
		if err == nil {
			return updated, nil
		}
		lastErr = err

		if !shared.IsSQLiteConflictError(err) {
			return nil, err
		}
		if i < s.maxRetries-1 {
			delay := s.retryBaseDelay * time.Duration(1<<i)
			slog.Debug("Database conflict during status update, retrying",
				"request_id", requestID, "attempt", i+1, "delay", delay)
			time.Sleep(delay)
		}
	}
	return nil, lastErr
}
