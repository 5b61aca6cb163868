package domain

import (
	"time"
)

// MessageTypeText is the default chat message kind. Other kinds (image,
// location pin) are opaque to the server and passed through to clients.
const MessageTypeText = "text"

// ChatMessage is a single message in the conversation attached to an
// assistance request. SenderID is a user id: either the requester or the
// principal behind the assigned responder.
type ChatMessage struct {
	ID           int64     `json:"id"`
	SosRequestID int64     `json:"sos_request_id"`
	SenderID     int64     `json:"sender_id"`
	Content      string    `json:"content"`
	MessageType  string    `json:"message_type"`
	CreatedAt    time.Time `json:"created_at"`
}
