package primary

import (
	"context"

	"github.com/example/fieldreport/internal/models"
	"github.com/example/fieldreport/internal/ports/secondary"
)

// SubmitRequest is one authored report: form fields, captured coordinates,
// and the photo candidate. Coords and Image are pointers because their
// absence is a distinct, terminal validation error rather than a zero value.
type SubmitRequest struct {
	Category    string                    `validate:"required,oneof='Flooding' 'Road Blocked' 'Potholes' 'Building Damage' 'Power Outage' 'Water Supply Issue' 'Other'"`
	Severity    string                    `validate:"required,oneof=Low Medium High"`
	Description string                    `validate:"required"`
	Coords      *models.Coordinates       `validate:"required"`
	Image       *secondary.ImageCandidate `validate:"required"`
}

// SubmitOutcome describes how a successful submission completed. Exactly one
// of {Report set, Queued true} holds: either the backend accepted the report
// or the submission is durably queued for later reconciliation.
type SubmitOutcome struct {
	// Report is the backend-created report when the online path ran.
	Report *models.Report

	// Queued is true when the report was persisted locally instead.
	Queued bool

	// QueueID is the durable queue id when Queued.
	QueueID string

	// CompressedSize is the image size after re-encoding, for display.
	CompressedSize int64

	// OversizeWarning is set when compression could not get the image under
	// the size ceiling; the submission still proceeds best-effort.
	OversizeWarning bool
}

// SubmissionService defines the primary port for submitting one report
// end-to-end. It is the only component aware of the online/offline branch.
type SubmissionService interface {
	// Submit runs validate → compress → upload-and-register or
	// encode-and-queue. On failure no partial state remains: either a
	// remote report exists, or a queue record exists, or neither.
	Submit(ctx context.Context, req SubmitRequest) (*SubmitOutcome, error)
}
