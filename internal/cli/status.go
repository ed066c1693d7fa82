package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/fieldreport/internal/wire"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show connectivity, session, and queue state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if wire.Monitor().Online(ctx) {
			fmt.Printf("Backend: %s (%s)\n", color.New(color.FgGreen).Sprint("online"), wire.Config().BackendURL)
		} else {
			fmt.Printf("Backend: %s (%s)\n", color.New(color.FgRed).Sprint("offline"), wire.Config().BackendURL)
		}

		if err := wire.AuthAdapter().WhoAmI(ctx); err != nil {
			return err
		}
		return wire.SyncAdapter().Status(ctx)
	},
}

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return statusCmd
}
