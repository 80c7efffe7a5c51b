package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ClampSeconds bounds n to [MinSeconds, max].
func ClampSeconds(n, max int) int {
	if n < MinSeconds {
		return MinSeconds
	}
	if n > max {
		return max
	}
	return n
}

// ValidateDurationInput filters raw down to its digits and clamps the result
// into [MinSeconds, max]. Input whose digits do not parse as an int yields "1".
// accepted is false when the cleaned value differs from the digit-only input.
func ValidateDurationInput(raw string, max int) (cleaned string, accepted bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	n, err := strconv.Atoi(digits)
	if err != nil {
		return "1", false
	}

	cleaned = strconv.Itoa(ClampSeconds(n, max))
	return cleaned, cleaned == digits
}

// ParseDuration parses text as a whole number of seconds in [MinSeconds, max].
// Surrounding whitespace is not accepted.
func ParseDuration(text string, max int) (int, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number of seconds", ErrInvalidDuration, text)
	}
	if n < MinSeconds || n > max {
		return 0, fmt.Errorf("%w: %d is outside %d-%d", ErrInvalidDuration, n, MinSeconds, max)
	}
	return n, nil
}

// FormatDisplay renders seconds as HH:MM:SS when at least an hour remains,
// MM:SS otherwise.
func FormatDisplay(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
