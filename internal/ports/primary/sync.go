package primary

import (
	"context"

	"github.com/example/fieldreport/internal/ports/secondary"
)

// RecordFailure describes one queued record whose drain attempt failed.
// The record stays in the queue at its original position.
type RecordFailure struct {
	ID     string
	Reason string
}

// DrainResult is the aggregate outcome of one reconciliation pass.
type DrainResult struct {
	// Skipped is true when the pass did not run: another pass was already
	// in flight, or the client was offline.
	Skipped bool

	// SkipReason explains a skipped pass.
	SkipReason string

	Attempted int
	Synced    int
	Failed    int

	// Remaining is the queue depth after the pass.
	Remaining int

	Failures []RecordFailure
}

// SyncService defines the primary port for draining the durable queue into
// the backend once connectivity is available.
type SyncService interface {
	// PendingCount reports the queue depth without draining.
	PendingCount(ctx context.Context) (int, error)

	// ListPending returns the queued submissions in drain order.
	ListPending(ctx context.Context) ([]*secondary.PendingSubmissionRecord, error)

	// ClearPending discards every queued submission and returns how many
	// were dropped. Explicit user-initiated reset only.
	ClearPending(ctx context.Context) (int, error)

	// Drain runs one reconciliation pass: oldest record first, one at a
	// time, deleting each record only after the backend acknowledges it.
	// A failing record is skipped, never blocking the rest of the pass.
	// At most one pass runs at a time; concurrent triggers are no-ops.
	Drain(ctx context.Context) (*DrainResult, error)
}
