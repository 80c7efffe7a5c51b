package ports

import "time"

// TickHandle is a scheduled repeating callback.
type TickHandle interface {
	// Cancel stops further invocations. Safe to call more than once.
	Cancel()
}

// Scheduler runs callbacks on a fixed period.
// This is a driven port (implemented by adapters).
type Scheduler interface {
	// ScheduleRepeating invokes fn every interval until the handle is cancelled.
	// Invocations for one handle never overlap.
	ScheduleRepeating(interval time.Duration, fn func()) TickHandle
}
