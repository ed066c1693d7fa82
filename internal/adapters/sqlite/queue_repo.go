// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/fieldreport/internal/ports/secondary"
)

// QueueRepository implements secondary.QueueRepository with SQLite. The
// local database is the only durable record of an offline submission, so
// every storage failure is wrapped in the store sentinels and surfaced.
type QueueRepository struct {
	db *sql.DB
}

// NewQueueRepository creates a new SQLite queue repository.
func NewQueueRepository(db *sql.DB) *QueueRepository {
	return &QueueRepository{db: db}
}

// Put persists a new pending submission.
func (r *QueueRepository) Put(ctx context.Context, record *secondary.PendingSubmissionRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO pending_submissions (id, category, severity, description, latitude, longitude, image_data, image_name, image_type, image_size, enqueued_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		record.ID, record.Category, record.Severity, record.Description,
		record.Latitude, record.Longitude,
		record.ImageData, record.ImageName, record.ImageType, record.ImageSize,
		record.EnqueuedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to enqueue submission: %w: %w", secondary.ErrStoreWrite, err)
	}

	return nil
}

// ListAll retrieves all queued submissions in ascending enqueue order.
// The id tiebreak keeps ordering deterministic for records enqueued within
// the same timestamp resolution.
func (r *QueueRepository) ListAll(ctx context.Context) ([]*secondary.PendingSubmissionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, category, severity, description, latitude, longitude, image_data, image_name, image_type, image_size, enqueued_at FROM pending_submissions ORDER BY enqueued_at ASC, id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending submissions: %w: %w", secondary.ErrStoreRead, err)
	}
	defer rows.Close()

	var records []*secondary.PendingSubmissionRecord
	for rows.Next() {
		var enqueuedAt time.Time

		record := &secondary.PendingSubmissionRecord{}
		err := rows.Scan(&record.ID, &record.Category, &record.Severity, &record.Description,
			&record.Latitude, &record.Longitude,
			&record.ImageData, &record.ImageName, &record.ImageType, &record.ImageSize,
			&enqueuedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending submission: %w: %w", secondary.ErrStoreRead, err)
		}

		record.EnqueuedAt = enqueuedAt
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate pending submissions: %w: %w", secondary.ErrStoreRead, err)
	}

	return records, nil
}

// Delete removes a pending submission by id. Unlike other repositories,
// deleting an absent id is not an error: a reconciliation retry must be able
// to delete a record that a previous pass already removed.
func (r *QueueRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM pending_submissions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete pending submission: %w: %w", secondary.ErrStoreWrite, err)
	}

	return nil
}

// Clear removes all pending submissions. Explicit user reset only.
func (r *QueueRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM pending_submissions"); err != nil {
		return fmt.Errorf("failed to clear pending submissions: %w: %w", secondary.ErrStoreWrite, err)
	}

	return nil
}

// Count returns the current queue depth.
func (r *QueueRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM pending_submissions").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending submissions: %w: %w", secondary.ErrStoreRead, err)
	}

	return count, nil
}

// Ensure QueueRepository implements the interface
var _ secondary.QueueRepository = (*QueueRepository)(nil)
