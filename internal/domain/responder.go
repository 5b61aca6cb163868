package domain

import (
	"time"
)

// Responder is an organization that answers assistance requests and accrues
// reward points for completed rescues. Points and TotalRescues are mutated
// only by the lifecycle manager when a request completes.
type Responder struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Name         string    `json:"name"`
	CoverageArea string    `json:"coverage_area,omitempty"`
	Points       int64     `json:"points"`
	TotalRescues int64     `json:"total_rescues"`
	CreatedAt    time.Time `json:"created_at"`
}
