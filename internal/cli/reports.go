package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/fieldreport/internal/models"
	"github.com/example/fieldreport/internal/wire"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Browse submitted reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reports, optionally within a bounding box",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ReportAdapter().List(cmd.Context(), boundsFromFlags(cmd))
	},
}

var reportsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ReportAdapter().Show(cmd.Context(), args[0])
	},
}

var reportsStatusCmd = &cobra.Command{
	Use:   "status [id] [status]",
	Short: "Update a report's verification status (authority only)",
	Long: `Update a report's verification status.

Valid statuses: Unverified, Verified, "In Progress", Resolved.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ReportAdapter().UpdateStatus(cmd.Context(), args[0], models.Status(args[1]))
	},
}

var reportsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the aggregate report summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		return wire.ReportAdapter().Stats(cmd.Context())
	},
}

// boundsFromFlags builds a bounding box from the list flags; nil when no
// bound flag was set.
func boundsFromFlags(cmd *cobra.Command) *models.MapBounds {
	set := false
	for _, name := range []string{"min-lat", "max-lat", "min-lng", "max-lng"} {
		if cmd.Flags().Changed(name) {
			set = true
			break
		}
	}
	if !set {
		return nil
	}

	minLat, _ := cmd.Flags().GetFloat64("min-lat")
	maxLat, _ := cmd.Flags().GetFloat64("max-lat")
	minLng, _ := cmd.Flags().GetFloat64("min-lng")
	maxLng, _ := cmd.Flags().GetFloat64("max-lng")

	return &models.MapBounds{MinLat: minLat, MaxLat: maxLat, MinLng: minLng, MaxLng: maxLng}
}

func init() {
	reportsListCmd.Flags().Float64("min-lat", -90, "South edge of the bounding box")
	reportsListCmd.Flags().Float64("max-lat", 90, "North edge of the bounding box")
	reportsListCmd.Flags().Float64("min-lng", -180, "West edge of the bounding box")
	reportsListCmd.Flags().Float64("max-lng", 180, "East edge of the bounding box")

	reportsCmd.AddCommand(reportsListCmd)
	reportsCmd.AddCommand(reportsShowCmd)
	reportsCmd.AddCommand(reportsStatusCmd)
	reportsCmd.AddCommand(reportsStatsCmd)
}

// ReportsCmd returns the reports command
func ReportsCmd() *cobra.Command {
	return reportsCmd
}
