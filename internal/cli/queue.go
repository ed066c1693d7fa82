package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/fieldreport/internal/wire"
)

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Inspect the offline submission queue",
}

var queueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports waiting to sync",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.SyncAdapter().ListQueue(cmd.Context())
	},
}

var queueClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard all queued reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this permanently discards unsent reports; re-run with --force to confirm")
		}
		return wire.SyncAdapter().ClearQueue(cmd.Context())
	},
}

func init() {
	queueClearCmd.Flags().Bool("force", false, "Confirm discarding unsent reports")

	queueCmd.AddCommand(queueListCmd)
	queueCmd.AddCommand(queueClearCmd)
}

// QueueCmd returns the queue command
func QueueCmd() *cobra.Command {
	return queueCmd
}
