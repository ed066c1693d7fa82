package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/fieldreport/internal/wire"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Submit locally queued reports now",
	Long: `Run one sync pass over the offline queue.

Queued reports are submitted oldest first. A report that fails stays queued
and is retried on the next pass; the rest of the queue is not blocked.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SyncAdapter().Drain(cmd.Context())
	},
}

// SyncCmd returns the sync command
func SyncCmd() *cobra.Command {
	return syncCmd
}
