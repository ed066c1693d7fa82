package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/fieldreport/internal/cli"
	"github.com/example/fieldreport/internal/config"
	"github.com/example/fieldreport/internal/version"
)

func main() {
	config.LoadEnv()

	rootCmd := &cobra.Command{
		Use:     "fieldreport",
		Short:   "fieldreport - offline-capable damage reporting",
		Version: version.String(),
		Long: `fieldreport is a CLI client for a citizen damage-reporting backend.
Reports submitted while offline are stored in a local durable queue and
synced automatically once connection returns.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.SubmitCmd())
	rootCmd.AddCommand(cli.SyncCmd())
	rootCmd.AddCommand(cli.QueueCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.WatchCmd())
	rootCmd.AddCommand(cli.DoctorCmd())

	// Report browsing
	rootCmd.AddCommand(cli.ReportsCmd())

	// Account
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.RegisterCmd())
	rootCmd.AddCommand(cli.LogoutCmd())
	rootCmd.AddCommand(cli.WhoamiCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
