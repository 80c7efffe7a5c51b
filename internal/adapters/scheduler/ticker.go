// Package scheduler provides implementations of the ports.Scheduler port.
package scheduler

import (
	"sync"
	"time"

	"github.com/xvierd/countdown-cli/internal/ports"
)

// Ticker schedules callbacks on wall-clock time using time.Ticker.
type Ticker struct{}

// NewTicker creates a wall-clock scheduler.
func NewTicker() *Ticker {
	return &Ticker{}
}

// Ensure Ticker implements ports.Scheduler.
var _ ports.Scheduler = (*Ticker)(nil)

// ScheduleRepeating starts a goroutine that calls fn every interval.
// Calls for one handle run sequentially on that goroutine.
func (t *Ticker) ScheduleRepeating(interval time.Duration, fn func()) ports.TickHandle {
	h := &tickerHandle{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}

	go func() {
		for {
			select {
			case <-h.done:
				return
			case <-h.ticker.C:
				// Cancel may race with a pending tick; prefer done.
				select {
				case <-h.done:
					return
				default:
				}
				fn()
			}
		}
	}()

	return h
}

type tickerHandle struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

// Cancel stops the ticker and its goroutine.
func (h *tickerHandle) Cancel() {
	h.once.Do(func() {
		h.ticker.Stop()
		close(h.done)
	})
}
