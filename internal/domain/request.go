package domain

import (
	"time"
)

// RequestStatus is the lifecycle state of an assistance request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusApproved  RequestStatus = "approved"
	StatusCompleted RequestStatus = "completed"
)

// Request categories. Free-text reports that the triage service cannot
// classify fall back to CategoryOther.
const (
	CategoryMedical         = "medical"
	CategoryFire            = "fire"
	CategoryNaturalDisaster = "natural_disaster"
	CategoryCrime           = "crime"
	CategoryOther           = "other"
)

// KnownCategory reports whether category is one of the enumerated values.
func KnownCategory(category string) bool {
	switch category {
	case CategoryMedical, CategoryFire, CategoryNaturalDisaster, CategoryCrime, CategoryOther:
		return true
	}
	return false
}

// SosRequest is an assistance request moving through
// pending -> approved -> completed. AssignedResponderID is zero until a
// responder wins the approval race, and never changes afterwards.
type SosRequest struct {
	ID                  int64         `json:"id"`
	UserID              int64         `json:"user_id"`
	Category            string        `json:"category"`
	Description         string        `json:"description"`
	Location            string        `json:"location"`
	Status              RequestStatus `json:"status"`
	AssignedResponderID int64         `json:"assigned_responder_id,omitempty"`
	PriorityScore       int           `json:"priority_score,omitempty"`
	PriorityReason      string        `json:"priority_reason,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
}

// Assigned returns true once a responder holds the assignment.
func (r *SosRequest) Assigned() bool {
	return r.AssignedResponderID != 0
}
