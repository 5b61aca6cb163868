// Package domain contains core domain types for the RescueLink service.
package domain

import (
	"time"
)

// Role identifies what a principal is allowed to do.
type Role string

const (
	// RoleRequester is a person asking for emergency assistance.
	RoleRequester Role = "requester"
	// RoleResponder is a principal that owns a responder organization.
	RoleResponder Role = "responder"
)

// User represents a registered principal: either a requester or the owner
// of a responder organization.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsResponder returns true if the user owns a responder organization.
func (u *User) IsResponder() bool {
	return u.Role == RoleResponder
}
