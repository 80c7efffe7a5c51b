package scheduler

import (
	"sync"
	"time"

	"github.com/xvierd/countdown-cli/internal/ports"
)

// Manual is a scheduler driven explicitly by Fire. It is meant for tests and
// for hosts that already own a tick loop.
type Manual struct {
	mu      sync.Mutex
	handles []*manualHandle
}

// NewManual creates a scheduler whose ticks are delivered by Fire.
func NewManual() *Manual {
	return &Manual{}
}

// Ensure Manual implements ports.Scheduler.
var _ ports.Scheduler = (*Manual)(nil)

// ScheduleRepeating registers fn. The interval is recorded but not waited on.
func (m *Manual) ScheduleRepeating(interval time.Duration, fn func()) ports.TickHandle {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := &manualHandle{interval: interval, fn: fn}
	m.handles = append(m.handles, h)
	return h
}

// Fire delivers one tick to every active handle.
func (m *Manual) Fire() {
	for _, h := range m.active() {
		h.fn()
	}
}

// FireN delivers n ticks.
func (m *Manual) FireN(n int) {
	for i := 0; i < n; i++ {
		m.Fire()
	}
}

// FireAll delivers one tick to every handle ever scheduled, cancelled or not,
// the way a late timer callback might arrive after cancellation.
func (m *Manual) FireAll() {
	m.mu.Lock()
	handles := append([]*manualHandle(nil), m.handles...)
	m.mu.Unlock()

	for _, h := range handles {
		h.fn()
	}
}

// ActiveCount returns the number of handles not yet cancelled.
func (m *Manual) ActiveCount() int {
	return len(m.active())
}

// Scheduled returns the total number of handles ever created.
func (m *Manual) Scheduled() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.handles)
}

// LastInterval returns the interval of the most recent handle.
func (m *Manual) LastInterval() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.handles) == 0 {
		return 0
	}
	return m.handles[len(m.handles)-1].interval
}

func (m *Manual) active() []*manualHandle {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*manualHandle
	for _, h := range m.handles {
		if !h.isCancelled() {
			out = append(out, h)
		}
	}
	return out
}

type manualHandle struct {
	mu        sync.Mutex
	interval  time.Duration
	fn        func()
	cancelled bool
}

func (h *manualHandle) Cancel() {
	h.mu.Lock()
	h.cancelled = true
	h.mu.Unlock()
}

func (h *manualHandle) isCancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelled
}
