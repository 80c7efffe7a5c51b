package ports

import (
	"context"

	"github.com/xvierd/countdown-cli/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// MCPStateProvider exposes the countdown to the MCP server.
// This is a driven port (implemented by services layer).
type MCPStateProvider interface {
	// GetCountdown returns the current countdown snapshot.
	GetCountdown(ctx context.Context) (domain.Countdown, error)

	// StartCountdown starts the countdown.
	StartCountdown(ctx context.Context) (domain.Countdown, error)

	// PauseCountdown pauses the countdown.
	PauseCountdown(ctx context.Context) (domain.Countdown, error)

	// ResetCountdown restores the remaining time to the target.
	ResetCountdown(ctx context.Context) (domain.Countdown, error)

	// ToggleCountdown starts or pauses the countdown.
	ToggleCountdown(ctx context.Context) (domain.Countdown, error)

	// SetDuration commits a new target duration given as text.
	SetDuration(ctx context.Context, text string) (domain.Countdown, error)

	// ValidateDuration cleans free-form duration input.
	ValidateDuration(ctx context.Context, raw string) (cleaned string, accepted bool)

	// MaxSeconds returns the upper duration bound in effect.
	MaxSeconds() int

	// GetAppearance returns the stored appearance preference.
	GetAppearance(ctx context.Context) (domain.Appearance, error)

	// SetAppearance stores a new appearance preference.
	SetAppearance(ctx context.Context, a domain.Appearance) error

	// RecentCompletions returns the completion log, newest first.
	RecentCompletions(ctx context.Context, limit int) ([]*domain.Completion, error)
}
