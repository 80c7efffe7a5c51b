package domain

import "time"

// Completion records a countdown that ran down to zero.
type Completion struct {
	ID            string
	TargetSeconds int
	CompletedAt   time.Time
}

// NewCompletion creates a completion record for a countdown of the given target.
func NewCompletion(targetSeconds int) *Completion {
	return &Completion{
		ID:            generateID(),
		TargetSeconds: targetSeconds,
		CompletedAt:   time.Now(),
	}
}
