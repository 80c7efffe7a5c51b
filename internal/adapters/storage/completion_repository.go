package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xvierd/countdown-cli/internal/domain"
	"github.com/xvierd/countdown-cli/internal/ports"
)

// completionRepository implements ports.CompletionRepository using SQLite.
type completionRepository struct {
	db *sql.DB
}

// newCompletionRepository creates a new completion repository.
func newCompletionRepository(db *sql.DB) ports.CompletionRepository {
	return &completionRepository{db: db}
}

// Save persists a completion record.
func (r *completionRepository) Save(ctx context.Context, c *domain.Completion) error {
	query := `
		INSERT INTO completions (id, target_seconds, completed_at)
		VALUES (?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, c.ID, c.TargetSeconds, c.CompletedAt)
	if err != nil {
		return fmt.Errorf("failed to save completion: %w", err)
	}

	return nil
}

// FindRecent returns up to limit completions, newest first.
func (r *completionRepository) FindRecent(ctx context.Context, limit int) ([]*domain.Completion, error) {
	query := `
		SELECT id, target_seconds, completed_at
		FROM completions
		ORDER BY completed_at DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var completions []*domain.Completion
	for rows.Next() {
		var c domain.Completion
		if err := rows.Scan(&c.ID, &c.TargetSeconds, &c.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		completions = append(completions, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating completions: %w", err)
	}

	return completions, nil
}

// Count returns the number of recorded completions.
func (r *completionRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM completions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count completions: %w", err)
	}
	return n, nil
}
