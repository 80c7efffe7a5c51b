package domain

const (
	// MinSeconds is the shortest countdown accepted.
	MinSeconds = 1

	// DefaultSeconds is the target a fresh countdown starts with.
	DefaultSeconds = 10
)

// Countdown is a snapshot of the countdown state.
type Countdown struct {
	TargetSeconds    int
	RemainingSeconds int
	Running          bool
}

// NewCountdown returns an idle countdown with target and remaining set to seconds.
func NewCountdown(seconds int) Countdown {
	return Countdown{
		TargetSeconds:    seconds,
		RemainingSeconds: seconds,
	}
}

// CanReset reports whether a reset would change anything.
func (c Countdown) CanReset() bool {
	return c.Running || c.RemainingSeconds != c.TargetSeconds
}

// Progress returns the elapsed fraction in [0, 1].
func (c Countdown) Progress() float64 {
	if c.TargetSeconds <= 0 {
		return 0
	}
	p := float64(c.TargetSeconds-c.RemainingSeconds) / float64(c.TargetSeconds)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Finished reports whether the countdown has reached zero.
func (c Countdown) Finished() bool {
	return c.RemainingSeconds == 0
}

// StatusLabel returns a human-readable label for the countdown status.
func (c Countdown) StatusLabel() string {
	switch {
	case c.Running:
		return "Running"
	case c.RemainingSeconds == 0:
		return "Done"
	case c.RemainingSeconds != c.TargetSeconds:
		return "Paused"
	default:
		return "Ready"
	}
}
