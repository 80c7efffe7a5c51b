package ports

import (
	"context"

	"github.com/xvierd/countdown-cli/internal/domain"
)

// TimerCommand represents a user action on the countdown screen.
type TimerCommand string

const (
	// CmdToggle starts a paused countdown or pauses a running one.
	CmdToggle TimerCommand = "toggle"

	// CmdReset stops the countdown and restores the target.
	CmdReset TimerCommand = "reset"

	// CmdIncrement raises the target by one second.
	CmdIncrement TimerCommand = "increment"

	// CmdDecrement lowers the target by one second.
	CmdDecrement TimerCommand = "decrement"

	// CmdCycleAppearance switches to the next appearance preference.
	CmdCycleAppearance TimerCommand = "cycle_appearance"

	// CmdQuit exits the application.
	CmdQuit TimerCommand = "quit"
)

// Timer is the display surface for the countdown.
// This is a driving port (called by the application layer).
type Timer interface {
	// Run shows the countdown and blocks until the user quits or ctx ends.
	Run(ctx context.Context, initial domain.Countdown) error

	// UpdateState pushes a new snapshot to the display.
	UpdateState(state domain.Countdown)

	// Stop gracefully stops the display.
	Stop()
}

// CountdownController is the countdown surface a display drives.
// This is a driven port (implemented by services layer).
type CountdownController interface {
	// Snapshot returns a copy of the current state.
	Snapshot() domain.Countdown

	// ToggleRunning starts an idle countdown or pauses a running one.
	ToggleRunning()

	// Start begins ticking.
	Start()

	// Reset pauses and restores the remaining time to the target.
	Reset()

	// SetTargetSeconds changes the target while idle.
	SetTargetSeconds(n int) error

	// AdjustTarget moves the target by delta seconds.
	AdjustTarget(delta int) error

	// ValidateDurationInput cleans free-form duration text.
	ValidateDurationInput(raw string) (cleaned string, accepted bool)

	// CommitDuration applies duration text as the new target, or fails
	// without touching the state.
	CommitDuration(text string) error

	// FormatDisplay renders seconds for the clock face.
	FormatDisplay(seconds int) string

	// MaxSeconds returns the largest accepted target.
	MaxSeconds() int
}
