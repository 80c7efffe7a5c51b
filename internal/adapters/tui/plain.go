package tui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// PlainRenderer prints one line per countdown change. It is used when
// stdout is not a terminal, so it starts the countdown itself and returns
// once it completes.
type PlainRenderer struct {
	controller ports.CountdownController
	out        io.Writer

	mu      sync.Mutex
	latest  domain.Countdown
	pending chan struct{}
	cancel  context.CancelFunc
}

// NewPlainRenderer creates a renderer writing to out.
func NewPlainRenderer(controller ports.CountdownController, out io.Writer) *PlainRenderer {
	return &PlainRenderer{
		controller: controller,
		out:        out,
		pending:    make(chan struct{}, 1),
	}
}

// Run prints the initial state, starts the countdown and blocks until it
// completes or ctx ends.
func (r *PlainRenderer) Run(ctx context.Context, initial domain.Countdown) error {
	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()
	defer cancel()

	last := r.formatLine(initial)
	if _, err := fmt.Fprintln(r.out, last); err != nil {
		return fmt.Errorf("failed to write: %w", err)
	}

	if !initial.Running {
		r.controller.Start()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.pending:
			r.mu.Lock()
			state := r.latest
			r.mu.Unlock()

			line := r.formatLine(state)
			if line != last {
				if _, err := fmt.Fprintln(r.out, line); err != nil {
					return fmt.Errorf("failed to write: %w", err)
				}
				last = line
			}
			if !state.Running && state.Finished() {
				return nil
			}
		}
	}
}

// UpdateState records a snapshot for printing. It never blocks.
func (r *PlainRenderer) UpdateState(state domain.Countdown) {
	r.mu.Lock()
	r.latest = state
	r.mu.Unlock()

	select {
	case r.pending <- struct{}{}:
	default:
	}
}

// Stop ends Run.
func (r *PlainRenderer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
}

func (r *PlainRenderer) formatLine(state domain.Countdown) string {
	return fmt.Sprintf("%s  %s", r.controller.FormatDisplay(state.RemainingSeconds), state.StatusLabel())
}

var _ ports.Timer = (*PlainRenderer)(nil)
