// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems: the durable queue, the report backend, connectivity
// probing, image processing, and session persistence.
package secondary

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the durable queue. Storage being unavailable is fatal
// for offline queueing and must reach the caller; a report that cannot be
// queued must never look like a success.
var (
	// ErrStoreWrite indicates the local durable store rejected a write.
	ErrStoreWrite = errors.New("queue store write failed")

	// ErrStoreRead indicates the local durable store could not be read.
	ErrStoreRead = errors.New("queue store read failed")
)

// PendingSubmissionRecord is the unit of durable state: one locally queued
// report awaiting reconciliation with the backend. Records are immutable
// once enqueued; reconciliation either deletes a record or leaves it intact.
type PendingSubmissionRecord struct {
	ID          string
	Category    string
	Severity    string
	Description string
	Latitude    float64
	Longitude   float64

	// ImageData holds the photo as its encoded textual representation
	// (see ImageProcessor.Encode); live binary handles do not survive
	// process restarts.
	ImageData string

	// Image metadata needed to reconstruct an upload at reconciliation time.
	ImageName string
	ImageType string
	ImageSize int64

	EnqueuedAt time.Time
}

// QueueRepository defines the secondary port for the durable submission queue.
type QueueRepository interface {
	// Put inserts a new pending submission. The record must be durably
	// visible to subsequent ListAll calls, including after a restart.
	Put(ctx context.Context, record *PendingSubmissionRecord) error

	// ListAll returns all queued records in ascending EnqueuedAt order.
	// The ordering guarantee is what makes reconciliation FIFO.
	ListAll(ctx context.Context) ([]*PendingSubmissionRecord, error)

	// Delete removes a record by id. Deleting a non-existent id is not an
	// error; reconciliation retries must be able to delete blindly.
	Delete(ctx context.Context, id string) error

	// Clear removes all records. Explicit user-initiated reset only.
	Clear(ctx context.Context) error

	// Count returns the number of queued records.
	Count(ctx context.Context) (int, error)
}
