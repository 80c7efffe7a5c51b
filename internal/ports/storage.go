// Package ports defines the interfaces (driven and driving ports)
// for the countdown application following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"

	"github.com/xvierd/countdown-cli/internal/domain"
)

// PreferenceStore is a small persistent key-value store.
// This is a driven port (implemented by adapters).
type PreferenceStore interface {
	// Get returns the stored value, or domain.ErrPreferenceNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// CompletionRepository defines the interface for completion log persistence.
// This is a driven port (implemented by adapters).
type CompletionRepository interface {
	// Save persists a completion record.
	Save(ctx context.Context, c *domain.Completion) error

	// FindRecent returns up to limit completions, newest first.
	FindRecent(ctx context.Context, limit int) ([]*domain.Completion, error)

	// Count returns the number of recorded completions.
	Count(ctx context.Context) (int, error)
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Preferences provides access to stored preferences.
	Preferences() PreferenceStore

	// Completions provides access to the completion log.
	Completions() CompletionRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
