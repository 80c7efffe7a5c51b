// Package notification provides desktop notification utilities.
package notification

import (
	"errors"
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/xvierd/countdown-cli/internal/config"
	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// Swapped out in tests so no real notification or sound is produced.
var (
	notifyFunc = func(title, message string) error { return beeep.Notify(title, message, "") }
	beepFunc   = func() error { return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration) }
)

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig
}

var _ ports.CompletionNotifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	return notifyFunc(title, message)
}

// NotifyComplete announces a finished countdown, with a beep when sound is on.
func (n *Notifier) NotifyComplete(targetSeconds int) error {
	if !n.IsEnabled() {
		return nil
	}

	title := "Countdown complete"
	message := fmt.Sprintf("Your %s countdown has finished.", domain.FormatDisplay(targetSeconds))

	var errs []error
	if err := notifyFunc(title, message); err != nil {
		errs = append(errs, fmt.Errorf("notify: %w", err))
	}
	if n.cfg.Sound {
		if err := beepFunc(); err != nil {
			errs = append(errs, fmt.Errorf("beep: %w", err))
		}
	}
	return errors.Join(errs...)
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
