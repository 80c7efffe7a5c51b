package ports

import (
	"context"
	"errors"
	"testing"

	"github.com/xvierd/countdown-cli/internal/domain"
)

// Mock implementations for testing interfaces.

type mockPreferenceStore struct {
	values map[string]string
}

func (m *mockPreferenceStore) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", domain.ErrPreferenceNotFound
	}
	return v, nil
}

func (m *mockPreferenceStore) Set(ctx context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

var _ PreferenceStore = (*mockPreferenceStore)(nil)

func TestMockPreferenceStore(t *testing.T) {
	store := &mockPreferenceStore{values: make(map[string]string)}
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, domain.AppearanceKey)
		if !errors.Is(err, domain.ErrPreferenceNotFound) {
			t.Errorf("Get() error = %v, want ErrPreferenceNotFound", err)
		}
	})

	t.Run("set and get", func(t *testing.T) {
		if err := store.Set(ctx, domain.AppearanceKey, "dark"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		got, err := store.Get(ctx, domain.AppearanceKey)
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		if got != "dark" {
			t.Errorf("Get() = %q, want dark", got)
		}
	})
}
