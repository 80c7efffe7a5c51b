// Package services implements the countdown use cases on top of the ports.
package services

import (
	"sync"
	"time"

	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/logging"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// TickInterval is the period between countdown ticks.
const TickInterval = time.Second

// CountdownService owns the countdown state and its single tick source.
type CountdownService struct {
	mu         sync.Mutex
	notifyMu   sync.Mutex
	scheduler  ports.Scheduler
	mode       domain.Mode
	state      domain.Countdown
	handle     ports.TickHandle
	generation uint64

	observers  map[int]func(domain.Countdown)
	nextID     int
	onComplete func(domain.Countdown)

	log *logging.Logger
}

var _ ports.CountdownController = (*CountdownService)(nil)

// NewCountdownService creates an idle countdown with the given initial target.
// The target is clamped into the mode's range.
func NewCountdownService(scheduler ports.Scheduler, mode domain.Mode, initialSeconds int) *CountdownService {
	if mode == "" {
		mode = domain.ModeStandard
	}
	return &CountdownService{
		scheduler: scheduler,
		mode:      mode,
		state:     domain.NewCountdown(domain.ClampSeconds(initialSeconds, mode.MaxSeconds())),
		observers: make(map[int]func(domain.Countdown)),
		log:       logging.Component("countdown"),
	}
}

// Mode returns the duration mode in effect.
func (s *CountdownService) Mode() domain.Mode {
	return s.mode
}

// MaxSeconds returns the largest accepted target.
func (s *CountdownService) MaxSeconds() int {
	return s.mode.MaxSeconds()
}

// Snapshot returns a copy of the current state.
func (s *CountdownService) Snapshot() domain.Countdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// CanReset reports whether the reset control should be enabled.
func (s *CountdownService) CanReset() bool {
	return s.Snapshot().CanReset()
}

// Subscribe registers fn to receive a snapshot after every change.
// Deliveries are serialized and the last one always carries the current
// state. fn must not call back into the service.
// The returned function removes the subscription.
func (s *CountdownService) Subscribe(fn func(domain.Countdown)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

// SetOnComplete sets the callback fired once each time the countdown runs out.
func (s *CountdownService) SetOnComplete(fn func(domain.Countdown)) {
	s.mu.Lock()
	s.onComplete = fn
	s.mu.Unlock()
}

// Start begins ticking. Any previous tick source is cancelled first.
func (s *CountdownService) Start() {
	s.mu.Lock()
	s.startLocked()
	s.log.Debugf("started at %d/%d", s.state.RemainingSeconds, s.state.TargetSeconds)
	s.mu.Unlock()

	s.notify()
}

// Pause stops ticking. Pausing an idle countdown does nothing.
func (s *CountdownService) Pause() {
	s.mu.Lock()
	wasRunning := s.state.Running
	s.pauseLocked()
	s.mu.Unlock()

	if wasRunning {
		s.log.Debug("paused")
		s.notify()
	}
}

// Reset pauses and restores the remaining time to the target.
func (s *CountdownService) Reset() {
	s.mu.Lock()
	s.pauseLocked()
	s.state.RemainingSeconds = s.state.TargetSeconds
	s.mu.Unlock()

	s.notify()
}

// ToggleRunning pauses a running countdown or starts an idle one.
func (s *CountdownService) ToggleRunning() {
	if s.Snapshot().Running {
		s.Pause()
		return
	}
	s.Start()
}

// Tick advances the countdown by one second. The tick that reaches zero (or
// finds zero already reached) stops the countdown and fires the completion
// callback.
func (s *CountdownService) Tick() {
	s.mu.Lock()
	s.tickLocked(s.generation)
}

// SetTargetSeconds changes the target while idle and syncs the remaining time.
func (s *CountdownService) SetTargetSeconds(n int) error {
	s.mu.Lock()
	if s.state.Running {
		s.mu.Unlock()
		return domain.ErrCountdownRunning
	}
	if n < domain.MinSeconds || n > s.mode.MaxSeconds() {
		s.mu.Unlock()
		return domain.ErrInvalidDuration
	}
	s.state.TargetSeconds = n
	s.state.RemainingSeconds = n
	s.mu.Unlock()

	s.notify()
	return nil
}

// AdjustTarget moves the target by delta seconds, like a stepper control.
func (s *CountdownService) AdjustTarget(delta int) error {
	return s.SetTargetSeconds(s.Snapshot().TargetSeconds + delta)
}

// ValidateDurationInput cleans raw duration text against this countdown's range.
func (s *CountdownService) ValidateDurationInput(raw string) (string, bool) {
	return domain.ValidateDurationInput(raw, s.mode.MaxSeconds())
}

// CommitDuration parses text and applies it as the new target. Unlike
// ValidateDurationInput it never corrects the value: anything outside the
// range leaves the state untouched.
func (s *CountdownService) CommitDuration(text string) error {
	n, err := domain.ParseDuration(text, s.mode.MaxSeconds())
	if err != nil {
		return err
	}
	return s.SetTargetSeconds(n)
}

// FormatDisplay renders seconds for the clock face.
func (s *CountdownService) FormatDisplay(seconds int) string {
	return domain.FormatDisplay(seconds)
}

// Close cancels the tick source. The service can still be restarted.
func (s *CountdownService) Close() {
	s.mu.Lock()
	s.pauseLocked()
	s.mu.Unlock()
}

func (s *CountdownService) startLocked() {
	s.cancelLocked()
	s.generation++
	gen := s.generation
	s.state.Running = true
	s.handle = s.scheduler.ScheduleRepeating(TickInterval, func() {
		s.mu.Lock()
		s.tickLocked(gen)
	})
}

func (s *CountdownService) pauseLocked() {
	s.cancelLocked()
	s.state.Running = false
}

func (s *CountdownService) cancelLocked() {
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
}

// tickLocked expects s.mu held and releases it before notifying.
func (s *CountdownService) tickLocked(gen uint64) {
	if !s.state.Running || gen != s.generation {
		s.mu.Unlock()
		return
	}

	if s.state.RemainingSeconds > 0 {
		s.state.RemainingSeconds--
		if s.state.RemainingSeconds > 0 {
			s.mu.Unlock()
			s.notify()
			return
		}
	}

	s.pauseLocked()
	snapshot := s.state
	onComplete := s.onComplete
	s.mu.Unlock()

	s.log.Infof("countdown of %ds complete", snapshot.TargetSeconds)
	// onComplete returns before observers see the finished state.
	if onComplete != nil {
		onComplete(snapshot)
	}
	s.notify()
}

func (s *CountdownService) notify() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	snapshot := s.state
	observers := make([]func(domain.Countdown), 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.Unlock()

	for _, fn := range observers {
		fn(snapshot)
	}
}
