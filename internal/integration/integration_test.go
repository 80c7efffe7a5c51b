package integration

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xvierd/countdown-cli/internal/adapters/scheduler"
	"github.com/xvierd/countdown-cli/internal/adapters/storage"
	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
	"github.com/xvierd/countdown-cli/internal/services"
)

// setupTestStorage creates a temporary database for integration tests
func setupTestStorage(t *testing.T) (ports.Storage, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := storage.New(dbPath)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store, dbPath
}

type stack struct {
	countdown  *services.CountdownService
	appearance *services.AppearanceService
	history    *services.HistoryService
	state      *services.StateService
	sched      *scheduler.Manual
}

func newStack(t *testing.T, store ports.Storage, seconds int) *stack {
	t.Helper()

	sched := scheduler.NewManual()
	s := &stack{
		countdown:  services.NewCountdownService(sched, domain.ModeStandard, seconds),
		appearance: services.NewAppearanceService(store.Preferences(), func() domain.Scheme { return domain.SchemeDark }),
		history:    services.NewHistoryService(store.Completions()),
		sched:      sched,
	}
	s.state = services.NewStateService(s.countdown, s.appearance, s.history)
	s.countdown.SetOnComplete(func(c domain.Countdown) {
		if _, err := s.history.Record(context.Background(), c); err != nil {
			t.Errorf("failed to record completion: %v", err)
		}
	})
	t.Cleanup(s.countdown.Close)
	return s
}

// TestFullCountdownLifecycle drives a countdown through start, pause,
// resume and completion and checks the completion log.
func TestFullCountdownLifecycle(t *testing.T) {
	store, _ := setupTestStorage(t)
	ctx := context.Background()
	s := newStack(t, store, 3)

	state, err := s.state.StartCountdown(ctx)
	if err != nil {
		t.Fatalf("failed to start: %v", err)
	}
	if !state.Running {
		t.Fatal("expected countdown to be running")
	}

	s.sched.Fire()
	state, _ = s.state.PauseCountdown(ctx)
	if state.Running || state.RemainingSeconds != 2 {
		t.Fatalf("after pause got %+v, want idle at 2", state)
	}

	// Ticks from the paused source must not move the clock.
	s.sched.FireAll()
	if got := s.countdown.Snapshot().RemainingSeconds; got != 2 {
		t.Fatalf("stale tick changed remaining to %d", got)
	}

	if _, err := s.state.ToggleCountdown(ctx); err != nil {
		t.Fatalf("failed to resume: %v", err)
	}
	s.sched.FireN(2)

	state, _ = s.state.GetCountdown(ctx)
	if state.Running || !state.Finished() {
		t.Fatalf("expected finished countdown, got %+v", state)
	}

	completions, err := s.state.RecentCompletions(ctx, 10)
	if err != nil {
		t.Fatalf("failed to list completions: %v", err)
	}
	if len(completions) != 1 || completions[0].TargetSeconds != 3 {
		t.Fatalf("completions = %+v, want one 3s entry", completions)
	}
}

// TestSetDurationWhileRunning checks that the target only changes when idle.
func TestSetDurationWhileRunning(t *testing.T) {
	store, _ := setupTestStorage(t)
	ctx := context.Background()
	s := newStack(t, store, 10)

	s.state.StartCountdown(ctx)
	if _, err := s.state.SetDuration(ctx, "30"); err == nil {
		t.Fatal("expected an error while running")
	}

	s.state.ResetCountdown(ctx)
	state, err := s.state.SetDuration(ctx, "30")
	if err != nil {
		t.Fatalf("failed to set duration: %v", err)
	}
	if state.TargetSeconds != 30 || state.RemainingSeconds != 30 {
		t.Errorf("got %+v, want 30/30", state)
	}

	if _, err := s.state.SetDuration(ctx, "3601"); err == nil {
		t.Error("expected out of range duration to be rejected")
	}
}

// TestAppearancePersistsAcrossRestart reopens the database the way a second
// launch would.
func TestAppearancePersistsAcrossRestart(t *testing.T) {
	store, dbPath := setupTestStorage(t)
	ctx := context.Background()
	s := newStack(t, store, 10)

	if err := s.state.SetAppearance(ctx, domain.AppearanceLight); err != nil {
		t.Fatalf("failed to set appearance: %v", err)
	}
	if next, err := s.appearance.Cycle(ctx); err != nil || next != domain.AppearanceDark {
		t.Fatalf("Cycle() = %q, %v; want dark", next, err)
	}
	store.Close()

	reopened, err := storage.New(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen storage: %v", err)
	}
	defer reopened.Close()

	s2 := newStack(t, reopened, 10)
	a, err := s2.state.GetAppearance(ctx)
	if err != nil {
		t.Fatalf("failed to get appearance: %v", err)
	}
	if a != domain.AppearanceDark {
		t.Errorf("appearance after restart = %q, want dark", a)
	}
	if scheme, _ := s2.appearance.Effective(ctx); scheme != domain.SchemeDark {
		t.Errorf("effective scheme = %q, want dark", scheme)
	}
}

// TestRepeatedCompletions runs the countdown to zero twice and expects two
// log entries, newest first.
func TestRepeatedCompletions(t *testing.T) {
	store, _ := setupTestStorage(t)
	ctx := context.Background()
	s := newStack(t, store, 1)

	s.countdown.Start()
	s.sched.Fire()

	s.countdown.Reset()
	if err := s.countdown.SetTargetSeconds(2); err != nil {
		t.Fatalf("failed to set target: %v", err)
	}
	s.countdown.Start()
	s.sched.FireN(2)

	total, err := s.history.Total(ctx)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}

	recent, _ := s.history.Recent(ctx, 0)
	if len(recent) != 2 {
		t.Fatalf("recent = %d entries, want 2", len(recent))
	}
	if recent[0].CompletedAt.Before(recent[1].CompletedAt) {
		t.Error("completions should be newest first")
	}
}
