package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// preferenceRepository implements ports.PreferenceStore using SQLite.
type preferenceRepository struct {
	db *sql.DB
}

// newPreferenceRepository creates a new preference repository.
func newPreferenceRepository(db *sql.DB) ports.PreferenceStore {
	return &preferenceRepository{db: db}
}

// Get returns the value stored under key.
func (r *preferenceRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (r *preferenceRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, key, value, time.Now()); err != nil {
		return fmt.Errorf("failed to save preference %s: %w", key, err)
	}
	return nil
}
