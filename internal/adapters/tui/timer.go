package tui

import (
	"context"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// Timer implements the ports.Timer interface using Bubbletea.
type Timer struct {
	controller ports.CountdownController
	opts       Options
	program    *tea.Program
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.RWMutex
	wg         sync.WaitGroup

	// latest holds the newest snapshot; pending signals that it changed.
	latest  domain.Countdown
	pending chan struct{}
}

// NewTimer creates a new TUI timer adapter.
func NewTimer(controller ports.CountdownController, opts Options) *Timer {
	return &Timer{
		controller: controller,
		opts:       opts,
		pending:    make(chan struct{}, 1),
	}
}

// Run starts the timer interface and blocks until the user quits.
func (t *Timer) Run(ctx context.Context, initial domain.Countdown) error {
	model := NewModel(t.controller, initial, t.opts)

	t.mu.Lock()
	t.program = tea.NewProgram(model, tea.WithAltScreen())
	t.ctx, t.cancel = context.WithCancel(ctx)
	program := t.program
	runCtx := t.ctx
	t.mu.Unlock()
	defer t.cancel()

	// Forward snapshots without ever blocking the controller's callbacks.
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		for {
			select {
			case <-runCtx.Done():
				return
			case <-t.pending:
				t.mu.RLock()
				state := t.latest
				t.mu.RUnlock()
				program.Send(stateMsg{state: state})
			}
		}
	}()

	// Handle context cancellation
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		<-runCtx.Done()
		program.Quit()
	}()

	_, err := program.Run()
	t.cancel()
	t.wg.Wait()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// Stop gracefully stops the timer interface.
func (t *Timer) Stop() {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.cancel != nil {
		t.cancel()
	}
}

// UpdateState records a snapshot for display. It never blocks.
func (t *Timer) UpdateState(state domain.Countdown) {
	t.mu.Lock()
	t.latest = state
	t.mu.Unlock()

	select {
	case t.pending <- struct{}{}:
	default:
	}
}

// Ensure Timer implements ports.Timer.
var _ ports.Timer = (*Timer)(nil)

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(f.Fd())
}
