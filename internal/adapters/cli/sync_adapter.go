package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/fieldreport/internal/ports/primary"
)

// SyncAdapter translates CLI operations to SyncService calls.
type SyncAdapter struct {
	service primary.SyncService
	out     io.Writer
}

// NewSyncAdapter creates a new SyncAdapter with the given service.
func NewSyncAdapter(service primary.SyncService, out io.Writer) *SyncAdapter {
	return &SyncAdapter{
		service: service,
		out:     out,
	}
}

// Status prints the pending queue depth.
func (a *SyncAdapter) Status(ctx context.Context) error {
	count, err := a.service.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to read pending queue: %w", err)
	}

	switch count {
	case 0:
		fmt.Fprintln(a.out, "No reports waiting to sync")
	case 1:
		fmt.Fprintln(a.out, "1 report waiting to sync")
	default:
		fmt.Fprintf(a.out, "%d reports waiting to sync\n", count)
	}
	return nil
}

// Drain runs one reconciliation pass and prints the tally.
func (a *SyncAdapter) Drain(ctx context.Context) error {
	result, err := a.service.Drain(ctx)
	if err != nil {
		return err
	}

	if result.Skipped {
		fmt.Fprintf(a.out, "Sync skipped: %s\n", result.SkipReason)
		return nil
	}

	if result.Attempted == 0 {
		fmt.Fprintln(a.out, "Nothing to sync")
		return nil
	}

	fmt.Fprintf(a.out, "✓ Synced %d of %d queued reports\n", result.Synced, result.Attempted)
	for _, f := range result.Failures {
		fmt.Fprintf(a.out, "  ✗ %s: %s\n", f.ID, f.Reason)
	}
	if result.Remaining > 0 {
		fmt.Fprintf(a.out, "  %d still queued; they will be retried next pass\n", result.Remaining)
	}
	return nil
}

// ListQueue prints the queued submissions in drain order.
func (a *SyncAdapter) ListQueue(ctx context.Context) error {
	records, err := a.service.ListPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to list queue: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(a.out, "Queue is empty")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tSEVERITY\tSIZE\tQUEUED AT")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Category, r.Severity, formatBytes(r.ImageSize),
			r.EnqueuedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

// ClearQueue discards all queued submissions.
func (a *SyncAdapter) ClearQueue(ctx context.Context) error {
	dropped, err := a.service.ClearPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear queue: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Dropped %d queued report(s)\n", dropped)
	return nil
}
