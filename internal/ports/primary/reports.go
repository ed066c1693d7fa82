package primary

import (
	"context"

	"github.com/example/fieldreport/internal/models"
)

// ReportService defines the primary port for browsing backend reports and
// the authority-facing status transitions.
type ReportService interface {
	// List returns reports, optionally restricted to a bounding box.
	List(ctx context.Context, bounds *models.MapBounds) ([]*models.Report, error)

	// Get fetches one report by id.
	Get(ctx context.Context, id string) (*models.Report, error)

	// UpdateStatus transitions a report's verification status.
	UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Report, error)

	// Stats returns the aggregate report summary.
	Stats(ctx context.Context) (*models.Stats, error)
}
