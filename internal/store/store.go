// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/rescuelink/rescuelink/internal/domain"
)

// RequestUpdate carries the fields CompareAndUpdateRequestStatus may change.
type RequestUpdate struct {
	Status              domain.RequestStatus
	AssignedResponderID int64
}

// Repository defines the interface for persisting users, responders,
// assistance requests and chat messages. It holds no policy: legal
// transitions and authorization live in the lifecycle and chat services.
type Repository interface {
	// CreateUser stores a new user and assigns its id.
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)

	// GetUser retrieves a user by id. Returns nil, nil when absent.
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	// GetUserByUsername retrieves a user by username. Returns nil, nil when absent.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CreateResponder stores a new responder organization and assigns its id.
	CreateResponder(ctx context.Context, responder *domain.Responder) (*domain.Responder, error)

	// GetResponder retrieves a responder organization by id.
	GetResponder(ctx context.Context, id int64) (*domain.Responder, error)

	// GetResponderByUser retrieves the responder organization owned by the
	// given user. Returns nil, nil when the user owns none.
	GetResponderByUser(ctx context.Context, userID int64) (*domain.Responder, error)

	// ListResponders returns all responder organizations sorted by points
	// descending (the leaderboard order).
	ListResponders(ctx context.Context) ([]*domain.Responder, error)

	// AddResponderReward atomically adds points and increments the rescue
	// count for a responder.
	AddResponderReward(ctx context.Context, responderID int64, points int64) error

	// CreateRequest stores a new assistance request, assigning its id and
	// creation timestamp. Status and assignment come from the caller.
	CreateRequest(ctx context.Context, request *domain.SosRequest) (*domain.SosRequest, error)

	// GetRequest retrieves an assistance request by id.
	GetRequest(ctx context.Context, id int64) (*domain.SosRequest, error)

	// ListRequestsByStatus returns requests in the given status, newest first.
	ListRequestsByStatus(ctx context.Context, status domain.RequestStatus) ([]*domain.SosRequest, error)

	// ListRequestsByUser returns a requester's own requests, newest first.
	ListRequestsByUser(ctx context.Context, userID int64) ([]*domain.SosRequest, error)

	// CompareAndUpdateRequestStatus applies update only if the request's
	// current status equals expected. This is the single serialization point
	// for the approval race: exactly one concurrent caller succeeds. Returns
	// the updated request, domain.ErrAlreadyAssigned when the status no
	// longer matches, or domain.ErrNotFound when the id does not exist.
	CompareAndUpdateRequestStatus(ctx context.Context, id int64, expected domain.RequestStatus, update RequestUpdate) (*domain.SosRequest, error)

	// CreateMessage stores a chat message, assigning its id and timestamp.
	CreateMessage(ctx context.Context, message *domain.ChatMessage) (*domain.ChatMessage, error)

	// ListMessages returns a request's messages in creation order, oldest first.
	ListMessages(ctx context.Context, sosRequestID int64) ([]*domain.ChatMessage, error)

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
