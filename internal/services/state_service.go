package services

import (
	"context"

	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// StateService implements the MCPStateProvider interface.
type StateService struct {
	countdown  *CountdownService
	appearance *AppearanceService
	history    *HistoryService
}

// NewStateService creates a new state service.
func NewStateService(countdown *CountdownService, appearance *AppearanceService, history *HistoryService) *StateService {
	return &StateService{
		countdown:  countdown,
		appearance: appearance,
		history:    history,
	}
}

// GetCountdown implements ports.MCPStateProvider.
func (s *StateService) GetCountdown(ctx context.Context) (domain.Countdown, error) {
	return s.countdown.Snapshot(), nil
}

// StartCountdown implements ports.MCPStateProvider.
func (s *StateService) StartCountdown(ctx context.Context) (domain.Countdown, error) {
	s.countdown.Start()
	return s.countdown.Snapshot(), nil
}

// PauseCountdown implements ports.MCPStateProvider.
func (s *StateService) PauseCountdown(ctx context.Context) (domain.Countdown, error) {
	s.countdown.Pause()
	return s.countdown.Snapshot(), nil
}

// ResetCountdown implements ports.MCPStateProvider.
func (s *StateService) ResetCountdown(ctx context.Context) (domain.Countdown, error) {
	s.countdown.Reset()
	return s.countdown.Snapshot(), nil
}

// ToggleCountdown implements ports.MCPStateProvider.
func (s *StateService) ToggleCountdown(ctx context.Context) (domain.Countdown, error) {
	s.countdown.ToggleRunning()
	return s.countdown.Snapshot(), nil
}

// SetDuration implements ports.MCPStateProvider.
func (s *StateService) SetDuration(ctx context.Context, text string) (domain.Countdown, error) {
	if err := s.countdown.CommitDuration(text); err != nil {
		return s.countdown.Snapshot(), err
	}
	return s.countdown.Snapshot(), nil
}

// ValidateDuration implements ports.MCPStateProvider.
func (s *StateService) ValidateDuration(ctx context.Context, raw string) (string, bool) {
	return s.countdown.ValidateDurationInput(raw)
}

// MaxSeconds implements ports.MCPStateProvider.
func (s *StateService) MaxSeconds() int {
	return s.countdown.MaxSeconds()
}

// GetAppearance implements ports.MCPStateProvider.
func (s *StateService) GetAppearance(ctx context.Context) (domain.Appearance, error) {
	return s.appearance.Get(ctx)
}

// SetAppearance implements ports.MCPStateProvider.
func (s *StateService) SetAppearance(ctx context.Context, a domain.Appearance) error {
	return s.appearance.Set(ctx, a)
}

// RecentCompletions implements ports.MCPStateProvider.
func (s *StateService) RecentCompletions(ctx context.Context, limit int) ([]*domain.Completion, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.Recent(ctx, limit)
}

// Ensure StateService implements MCPStateProvider.
var _ ports.MCPStateProvider = (*StateService)(nil)
