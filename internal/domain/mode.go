package domain

import "fmt"

// Mode selects the upper bound for countdown durations.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeExtended Mode = "extended"
)

// ValidModes lists all supported mode values.
var ValidModes = []Mode{
	ModeStandard,
	ModeExtended,
}

// ValidateMode checks if a string is a valid mode.
func ValidateMode(s string) (Mode, error) {
	m := Mode(s)
	for _, valid := range ValidModes {
		if m == valid {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q: must be one of standard, extended", ErrInvalidMode, s)
}

// MaxSeconds returns the largest duration accepted in this mode.
func (m Mode) MaxSeconds() int {
	if m == ModeStandard {
		return 3600
	}
	return 36000
}

// Label returns a human-readable label.
func (m Mode) Label() string {
	switch m {
	case ModeStandard:
		return "Standard (1h)"
	case ModeExtended:
		return "Extended (10h)"
	default:
		return "Unknown"
	}
}
