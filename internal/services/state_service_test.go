package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/countdown-cli/internal/adapters/scheduler"
	"github.com/xvierd/countdown-cli/internal/domain"
)

func TestStateService(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	sched := scheduler.NewManual()
	countdown := NewCountdownService(sched, domain.ModeStandard, 10)
	defer countdown.Close()
	state := NewStateService(countdown, NewAppearanceService(store.Preferences(), nil), NewHistoryService(store.Completions()))
	ctx := context.Background()

	c, err := state.StartCountdown(ctx)
	require.NoError(t, err)
	assert.True(t, c.Running)

	sched.FireN(3)
	c, err = state.PauseCountdown(ctx)
	require.NoError(t, err)
	assert.False(t, c.Running)
	assert.Equal(t, 7, c.RemainingSeconds)

	c, err = state.SetDuration(ctx, "0")
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	assert.Equal(t, 7, c.RemainingSeconds)

	c, err = state.SetDuration(ctx, "120")
	require.NoError(t, err)
	assert.Equal(t, domain.NewCountdown(120), c)

	c, err = state.ToggleCountdown(ctx)
	require.NoError(t, err)
	assert.True(t, c.Running)

	c, err = state.ResetCountdown(ctx)
	require.NoError(t, err)
	assert.False(t, c.Running)

	cleaned, accepted := state.ValidateDuration(ctx, "999999")
	assert.Equal(t, "3600", cleaned)
	assert.False(t, accepted)
	assert.Equal(t, 3600, state.MaxSeconds())

	require.NoError(t, state.SetAppearance(ctx, domain.AppearanceDark))
	a, err := state.GetAppearance(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.AppearanceDark, a)

	completions, err := state.RecentCompletions(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, completions)
}
