// Package chat relays messages between the requester of an SOS request and
// the responder assigned to it.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/rescuelink/rescuelink/internal/domain"
	"github.com/rescuelink/rescuelink/internal/store"
)

// EventSink receives notifications about persisted messages.
type EventSink interface {
	MessageSent(message *domain.ChatMessage)
}

type Service struct {
	repo   store.Repository
	events EventSink
}

func NewService(repo store.Repository, events EventSink) *Service {
	return &Service{repo: repo, events: events}
}

// SendMessage stores a message on a request's thread and notifies the room.
// Only the requester and the assigned responder's user may write.
func (s *Service) SendMessage(ctx context.Context, requestID, senderID int64, content, messageType string) (*domain.ChatMessage, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content is empty: %w", domain.ErrValidation)
	}
	if messageType == "" {
		messageType = domain.MessageTypeText
	}

	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get sos request: %w", err)
	}
	if request == nil {
		return nil, fmt.Errorf("sos request %d has no active thread: %w", requestID, domain.ErrInvalidState)
	}

	if err := s.authorizeParticipant(ctx, request, senderID); err != nil {
		return nil, err
	}

	message, err := s.repo.CreateMessage(ctx, &domain.ChatMessage{
		SosRequestID: requestID,
		SenderID:     senderID,
		Content:      content,
		MessageType:  messageType,
	})
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.events.MessageSent(message)
	return message, nil
}

// ListMessages returns a request's thread oldest first.
func (s *Service) ListMessages(ctx context.Context, requestID, userID int64) ([]*domain.ChatMessage, error) {
	request, err := s.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get sos request: %w", err)
	}
	if request == nil {
		return nil, fmt.Errorf("sos request %d: %w", requestID, domain.ErrNotFound)
	}
	if err := s.authorizeParticipant(ctx, request, userID); err != nil {
		return nil, err
	}
	return s.repo.ListMessages(ctx, requestID)
}

func (s *Service) authorizeParticipant(ctx context.Context, request *domain.SosRequest, userID int64) error {
	if userID == request.UserID {
		return nil
	}
	if request.Assigned() {
		responder, err := s.repo.GetResponderByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("get responder: %w", err)
		}
		if responder != nil && responder.ID == request.AssignedResponderID {
			return nil
		}
	}
	return fmt.Errorf("user %d is not a participant of request %d: %w", userID, request.ID, domain.ErrNotAuthorized)
}
