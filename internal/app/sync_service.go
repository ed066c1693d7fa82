package app

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/example/fieldreport/internal/ports/primary"
	"github.com/example/fieldreport/internal/ports/secondary"
)

// SyncServiceImpl implements the SyncService interface. It drains the
// durable queue into the backend, one record at a time, oldest first.
type SyncServiceImpl struct {
	queue        secondary.QueueRepository
	gateway      secondary.ReportGateway
	connectivity secondary.ConnectivityMonitor
	imaging      secondary.ImageProcessor
	log          *logrus.Entry

	// syncing guards against overlapping drain passes. Connectivity
	// flapping and manual triggers can race; only one pass may run.
	syncing atomic.Bool
}

// NewSyncService creates a new SyncService with injected dependencies.
func NewSyncService(
	queue secondary.QueueRepository,
	gateway secondary.ReportGateway,
	connectivity secondary.ConnectivityMonitor,
	imaging secondary.ImageProcessor,
	log *logrus.Entry,
) *SyncServiceImpl {
	return &SyncServiceImpl{
		queue:        queue,
		gateway:      gateway,
		connectivity: connectivity,
		imaging:      imaging,
		log:          log,
	}
}

// PendingCount reports the queue depth without draining.
func (s *SyncServiceImpl) PendingCount(ctx context.Context) (int, error) {
	return s.queue.Count(ctx)
}

// ListPending returns the queued submissions in drain order.
func (s *SyncServiceImpl) ListPending(ctx context.Context) ([]*secondary.PendingSubmissionRecord, error) {
	return s.queue.ListAll(ctx)
}

// ClearPending discards every queued submission.
func (s *SyncServiceImpl) ClearPending(ctx context.Context) (int, error) {
	n, err := s.queue.Count(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.queue.Clear(ctx); err != nil {
		return 0, err
	}
	s.log.WithField("dropped", n).Warn("pending queue cleared")
	return n, nil
}

// Drain runs one reconciliation pass. Records are attempted in enqueue
// order; a record is deleted only after the backend acknowledges the full
// upload-and-create sequence, so a crash mid-pass re-attempts rather than
// loses. A failing record is skipped and stays queued for the next pass.
func (s *SyncServiceImpl) Drain(ctx context.Context) (*primary.DrainResult, error) {
	if !s.syncing.CompareAndSwap(false, true) {
		return &primary.DrainResult{Skipped: true, SkipReason: "sync already in progress"}, nil
	}
	defer s.syncing.Store(false)

	if !s.connectivity.Online(ctx) {
		return &primary.DrainResult{Skipped: true, SkipReason: "offline"}, nil
	}

	records, err := s.queue.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list queued submissions: %w", err)
	}

	result := &primary.DrainResult{}
	for _, record := range records {
		result.Attempted++
		if err := s.reconcile(ctx, record); err != nil {
			result.Failed++
			result.Failures = append(result.Failures, primary.RecordFailure{
				ID:     record.ID,
				Reason: err.Error(),
			})
			s.log.WithFields(logrus.Fields{
				"queue_id": record.ID,
				"error":    err.Error(),
			}).Warn("queued submission failed to sync")
			continue
		}
		result.Synced++
		s.log.WithField("queue_id", record.ID).Info("queued submission synced")
	}

	remaining, err := s.queue.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count remaining submissions: %w", err)
	}
	result.Remaining = remaining

	return result, nil
}

// reconcile pushes one queued record through the online submission path and
// deletes it on success.
func (s *SyncServiceImpl) reconcile(ctx context.Context, record *secondary.PendingSubmissionRecord) error {
	data, contentType, err := s.imaging.Decode(record.ImageData)
	if err != nil {
		return fmt.Errorf("failed to decode stored image: %w", err)
	}

	imageURL, err := s.gateway.UploadImage(ctx, data, record.ImageName, contentType)
	if err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}

	if _, err := s.gateway.CreateReport(ctx, secondary.CreateReportRequest{
		Category:    record.Category,
		Severity:    record.Severity,
		Description: record.Description,
		Latitude:    record.Latitude,
		Longitude:   record.Longitude,
		ImageURL:    imageURL,
	}); err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	if err := s.queue.Delete(ctx, record.ID); err != nil {
		// The backend accepted the report but the local delete failed;
		// the record will be re-sent next pass. Surface it as a failure
		// so the operator knows a duplicate is possible.
		return fmt.Errorf("synced but failed to dequeue: %w", err)
	}

	return nil
}

// Ensure SyncServiceImpl implements the interface
var _ primary.SyncService = (*SyncServiceImpl)(nil)
