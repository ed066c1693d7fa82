// Package app implements the primary port services: the submission
// pipeline, queue reconciliation, report browsing, and session lifecycle.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/fieldreport/internal/ports/primary"
	"github.com/example/fieldreport/internal/ports/secondary"
)

// SubmissionServiceImpl implements the SubmissionService interface. It is
// the only component that knows about the online/offline branch.
type SubmissionServiceImpl struct {
	queue        secondary.QueueRepository
	gateway      secondary.ReportGateway
	connectivity secondary.ConnectivityMonitor
	imaging      secondary.ImageProcessor
	validate     *validator.Validate
	log          *logrus.Entry
}

// NewSubmissionService creates a new SubmissionService with injected dependencies.
func NewSubmissionService(
	queue secondary.QueueRepository,
	gateway secondary.ReportGateway,
	connectivity secondary.ConnectivityMonitor,
	imaging secondary.ImageProcessor,
	log *logrus.Entry,
) *SubmissionServiceImpl {
	return &SubmissionServiceImpl{
		queue:        queue,
		gateway:      gateway,
		connectivity: connectivity,
		imaging:      imaging,
		validate:     validator.New(),
		log:          log,
	}
}

// Submit runs one report submission end-to-end:
// validate → compress → upload-and-register (online) or encode-and-queue
// (offline). On any failure no partial state remains.
func (s *SubmissionServiceImpl) Submit(ctx context.Context, req primary.SubmitRequest) (*primary.SubmitOutcome, error) {
	// Presence checks first: a missing photo or location is a terminal
	// user-facing error, distinct from any connectivity condition.
	if req.Image == nil {
		return nil, fmt.Errorf("%w: an image is required", primary.ErrValidation)
	}
	if req.Coords == nil {
		return nil, fmt.Errorf("%w: location not available", primary.ErrValidation)
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", primary.ErrValidation, err)
	}

	if res := s.imaging.Validate(*req.Image); !res.OK {
		return nil, fmt.Errorf("%w: %s", primary.ErrValidation, res.Reason)
	}

	// Compression runs on its own worker; wait for it without holding
	// anything else. Failure aborts the attempt: there is no fallback to
	// an uncompressed upload because the backend enforces size limits.
	var compressed secondary.CompressedImage
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case outcome := <-s.imaging.CompressAsync(ctx, *req.Image):
		if outcome.Err != nil {
			return nil, fmt.Errorf("%w: %v", primary.ErrCompression, outcome.Err)
		}
		compressed = outcome.Image
	}

	// Branch on connectivity, queried freshly at the decision point. The
	// value observed here decides the path even if connectivity changes
	// mid-flight; a failed online attempt is never converted into an
	// offline-queue entry.
	if s.connectivity.Online(ctx) {
		return s.submitOnline(ctx, req, compressed)
	}
	return s.queueOffline(ctx, req, compressed)
}

func (s *SubmissionServiceImpl) submitOnline(ctx context.Context, req primary.SubmitRequest, compressed secondary.CompressedImage) (*primary.SubmitOutcome, error) {
	imageURL, err := s.gateway.UploadImage(ctx, compressed.Data, compressed.Name, compressed.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	report, err := s.gateway.CreateReport(ctx, secondary.CreateReportRequest{
		Category:    req.Category,
		Severity:    req.Severity,
		Description: req.Description,
		Latitude:    req.Coords.Latitude,
		Longitude:   req.Coords.Longitude,
		ImageURL:    imageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"category":  report.Category,
		"bytes":     len(compressed.Data),
	}).Info("report submitted")

	return &primary.SubmitOutcome{
		Report:          report,
		CompressedSize:  int64(len(compressed.Data)),
		OversizeWarning: compressed.Oversize,
	}, nil
}

func (s *SubmissionServiceImpl) queueOffline(ctx context.Context, req primary.SubmitRequest, compressed secondary.CompressedImage) (*primary.SubmitOutcome, error) {
	record := &secondary.PendingSubmissionRecord{
		ID:          uuid.NewString(),
		Category:    req.Category,
		Severity:    req.Severity,
		Description: req.Description,
		Latitude:    req.Coords.Latitude,
		Longitude:   req.Coords.Longitude,
		ImageData:   s.imaging.Encode(compressed.Data, compressed.ContentType),
		ImageName:   compressed.Name,
		ImageType:   compressed.ContentType,
		ImageSize:   int64(len(compressed.Data)),
		EnqueuedAt:  time.Now().UTC(),
	}

	// A failed Put must reach the user: an offline report that silently
	// fails to queue is a lost report.
	if err := s.queue.Put(ctx, record); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"queue_id": record.ID,
		"category": record.Category,
		"bytes":    record.ImageSize,
	}).Info("report queued for later sync")

	return &primary.SubmitOutcome{
		Queued:          true,
		QueueID:         record.ID,
		CompressedSize:  record.ImageSize,
		OversizeWarning: compressed.Oversize,
	}, nil
}

// Ensure SubmissionServiceImpl implements the interface
var _ primary.SubmissionService = (*SubmissionServiceImpl)(nil)
