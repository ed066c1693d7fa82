package app

import (
	"context"
	"fmt"

	"github.com/example/fieldreport/internal/models"
	"github.com/example/fieldreport/internal/ports/primary"
	"github.com/example/fieldreport/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface. The backend owns
// all report state; this service adds client-side input checks.
type ReportServiceImpl struct {
	gateway secondary.ReportGateway
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(gateway secondary.ReportGateway) *ReportServiceImpl {
	return &ReportServiceImpl{gateway: gateway}
}

// List returns reports, optionally restricted to a bounding box.
func (s *ReportServiceImpl) List(ctx context.Context, bounds *models.MapBounds) ([]*models.Report, error) {
	return s.gateway.ListReports(ctx, bounds)
}

// Get fetches one report by id.
func (s *ReportServiceImpl) Get(ctx context.Context, id string) (*models.Report, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: report id is required", primary.ErrValidation)
	}
	return s.gateway.GetReport(ctx, id)
}

// UpdateStatus transitions a report's verification status.
func (s *ReportServiceImpl) UpdateStatus(ctx context.Context, id string, status models.Status) (*models.Report, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: report id is required", primary.ErrValidation)
	}
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", primary.ErrValidation, status)
	}
	return s.gateway.UpdateReportStatus(ctx, id, status)
}

// Stats returns the aggregate report summary.
func (s *ReportServiceImpl) Stats(ctx context.Context) (*models.Stats, error) {
	return s.gateway.Stats(ctx)
}

// Ensure ReportServiceImpl implements the interface
var _ primary.ReportService = (*ReportServiceImpl)(nil)
