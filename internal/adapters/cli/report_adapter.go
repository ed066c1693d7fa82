package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/fieldreport/internal/models"
	"github.com/example/fieldreport/internal/ports/primary"
)

// ReportAdapter translates CLI operations to ReportService calls.
type ReportAdapter struct {
	service primary.ReportService
	out     io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given service.
func NewReportAdapter(service primary.ReportService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		service: service,
		out:     out,
	}
}

// List prints reports, optionally restricted to a bounding box.
func (a *ReportAdapter) List(ctx context.Context, bounds *models.MapBounds) error {
	reports, err := a.service.List(ctx, bounds)
	if err != nil {
		return fmt.Errorf("failed to list reports: %w", err)
	}

	if len(reports) == 0 {
		fmt.Fprintln(a.out, "No reports found")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tSEVERITY\tSTATUS\tCREATED")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Category, severityLabel(r.Severity), statusLabel(r.Status), r.CreatedAt)
	}
	return w.Flush()
}

// Show prints the details of one report.
func (a *ReportAdapter) Show(ctx context.Context, id string) error {
	report, err := a.service.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get report: %w", err)
	}

	fmt.Fprintf(a.out, "\nReport:   %s\n", report.ID)
	fmt.Fprintf(a.out, "Category: %s\n", report.Category)
	fmt.Fprintf(a.out, "Severity: %s\n", severityLabel(report.Severity))
	fmt.Fprintf(a.out, "Status:   %s\n", statusLabel(report.Status))
	fmt.Fprintf(a.out, "Location: %.5f, %.5f\n", report.Latitude, report.Longitude)
	if report.ImageURL != "" {
		fmt.Fprintf(a.out, "Image:    %s\n", report.ImageURL)
	}
	fmt.Fprintf(a.out, "Created:  %s\n", report.CreatedAt)
	fmt.Fprintf(a.out, "\n%s\n\n", report.Description)
	return nil
}

// UpdateStatus transitions a report's verification status.
func (a *ReportAdapter) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	report, err := a.service.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Report %s marked %s\n", report.ID, statusLabel(report.Status))
	return nil
}

// Stats prints the aggregate report summary.
func (a *ReportAdapter) Stats(ctx context.Context) error {
	stats, err := a.service.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	fmt.Fprintf(a.out, "\nTotal reports: %d\n\n", stats.Total)
	fmt.Fprintf(a.out, "By status:\n")
	fmt.Fprintf(a.out, "  Unverified:  %d\n", stats.Unverified)
	fmt.Fprintf(a.out, "  Verified:    %d\n", stats.Verified)
	fmt.Fprintf(a.out, "  In Progress: %d\n", stats.InProgress)
	fmt.Fprintf(a.out, "  Resolved:    %d\n", stats.Resolved)
	fmt.Fprintf(a.out, "\nBy severity:\n")
	fmt.Fprintf(a.out, "  High:   %d\n", stats.HighSeverity)
	fmt.Fprintf(a.out, "  Medium: %d\n", stats.MediumSeverity)
	fmt.Fprintf(a.out, "  Low:    %d\n\n", stats.LowSeverity)
	return nil
}

func severityLabel(severity string) string {
	switch models.Severity(severity) {
	case models.SeverityHigh:
		return color.New(color.FgRed).Sprint(severity)
	case models.SeverityMedium:
		return color.New(color.FgYellow).Sprint(severity)
	case models.SeverityLow:
		return color.New(color.FgGreen).Sprint(severity)
	}
	return severity
}

func statusLabel(status string) string {
	switch models.Status(status) {
	case models.StatusResolved:
		return color.New(color.FgGreen).Sprint(status)
	case models.StatusInProgress:
		return color.New(color.FgCyan).Sprint(status)
	case models.StatusVerified:
		return color.New(color.FgBlue).Sprint(status)
	case models.StatusUnverified:
		return color.New(color.FgYellow).Sprint(status)
	}
	return status
}
