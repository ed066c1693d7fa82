// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// all business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/fieldreport/internal/ports/primary"
)

// SubmissionAdapter translates CLI operations to SubmissionService calls.
type SubmissionAdapter struct {
	service primary.SubmissionService
	out     io.Writer
}

// NewSubmissionAdapter creates a new SubmissionAdapter with the given service.
func NewSubmissionAdapter(service primary.SubmissionService, out io.Writer) *SubmissionAdapter {
	return &SubmissionAdapter{
		service: service,
		out:     out,
	}
}

// Submit runs one report submission and prints where it ended up.
func (a *SubmissionAdapter) Submit(ctx context.Context, req primary.SubmitRequest) error {
	outcome, err := a.service.Submit(ctx, req)
	if err != nil {
		return err
	}

	if outcome.OversizeWarning {
		fmt.Fprintf(a.out, "warning: compressed image is %s, above the usual limit; submitting anyway\n",
			formatBytes(outcome.CompressedSize))
	}

	if outcome.Queued {
		fmt.Fprintf(a.out, "✓ You're offline: report saved locally (%s)\n", outcome.QueueID)
		fmt.Fprintln(a.out, "  It will be submitted automatically when connection returns (or run: fieldreport sync)")
		return nil
	}

	fmt.Fprintf(a.out, "✓ Report submitted: %s\n", outcome.Report.ID)
	fmt.Fprintf(a.out, "  %s / %s, image %s\n", outcome.Report.Category, outcome.Report.Severity,
		formatBytes(outcome.CompressedSize))
	return nil
}

// formatBytes renders a byte count as KB/MB for display.
func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.0f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
