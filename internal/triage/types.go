// Package triage integrates the external emergency classification service.
package triage

import "context"

// Assessment is the classifier's verdict on a free-text report.
type Assessment struct {
	Category      string
	PriorityScore int
	Rationale     string
}

// Classifier scores free-text emergency reports. Implementations may be
// unavailable at any time; callers must treat every error as non-fatal.
type Classifier interface {
	Classify(ctx context.Context, text string) (*Assessment, error)
}
