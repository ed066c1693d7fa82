package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/fieldreport/internal/logging"
	"github.com/example/fieldreport/internal/wire"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch connectivity and sync queued reports automatically",
	Long: `Run in the foreground, probing the backend periodically. Whenever
connection returns, queued reports are synced without user action.
Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log := logging.New("watch")
		monitor := wire.Monitor()
		syncAdapter := wire.SyncAdapter()

		unsubscribe := monitor.Subscribe(func(online bool) {
			if !online {
				log.Info("backend unreachable, holding queue")
				return
			}
			log.Info("backend reachable, syncing queue")
			if err := syncAdapter.Drain(ctx); err != nil {
				log.WithError(err).Error("sync pass failed")
			}
		})
		defer unsubscribe()

		monitor.Start(ctx)

		// Catch up on anything queued before the watcher started.
		if monitor.Online(ctx) {
			if err := syncAdapter.Drain(ctx); err != nil {
				log.WithError(err).Error("initial sync pass failed")
			}
		}

		fmt.Printf("Watching %s (Ctrl-C to stop)\n", wire.Config().BackendURL)
		<-ctx.Done()
		fmt.Println("\nStopped")
		return nil
	},
}

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	return watchCmd
}
