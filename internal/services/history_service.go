package services

import (
	"context"
	"fmt"

	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// DefaultHistoryLimit bounds history queries when no limit is given.
const DefaultHistoryLimit = 20

// HistoryService records finished countdowns.
type HistoryService struct {
	completions ports.CompletionRepository
}

// NewHistoryService creates a new history service.
func NewHistoryService(completions ports.CompletionRepository) *HistoryService {
	return &HistoryService{completions: completions}
}

// Record logs a countdown that reached zero.
func (s *HistoryService) Record(ctx context.Context, state domain.Countdown) (*domain.Completion, error) {
	c := domain.NewCompletion(state.TargetSeconds)
	if err := s.completions.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}
	return c, nil
}

// Recent returns the newest completions. A non-positive limit uses DefaultHistoryLimit.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]*domain.Completion, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.completions.FindRecent(ctx, limit)
}

// Total returns how many countdowns have completed.
func (s *HistoryService) Total(ctx context.Context) (int, error) {
	return s.completions.Count(ctx)
}
