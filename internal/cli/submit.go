// Package cli defines the cobra commands for the fieldreport client.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/cobra"

	"github.com/example/fieldreport/internal/models"
	"github.com/example/fieldreport/internal/ports/primary"
	"github.com/example/fieldreport/internal/ports/secondary"
	"github.com/example/fieldreport/internal/wire"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit a damage report",
	Long: `Submit a damage report with a photo and location.

Works offline: when the backend is unreachable the report is stored locally
and submitted automatically once connection returns.

Examples:
  fieldreport submit --category Flooding --severity High \
    --description "Street flooded after heavy rain" \
    --lat 35.6892 --lng 51.3890 --image ./street.jpg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		severity, _ := cmd.Flags().GetString("severity")
		description, _ := cmd.Flags().GetString("description")
		imagePath, _ := cmd.Flags().GetString("image")

		image, err := readImageCandidate(imagePath)
		if err != nil {
			return err
		}

		return wire.SubmissionAdapter().Submit(cmd.Context(), primary.SubmitRequest{
			Category:    category,
			Severity:    severity,
			Description: description,
			Coords:      coordsFromFlags(cmd),
			Image:       image,
		})
	},
}

// coordsFromFlags builds the captured location; nil when no location flag
// was given. (0, 0) is a real place in the Gulf of Guinea, so flag defaults
// must never pass as a location.
func coordsFromFlags(cmd *cobra.Command) *models.Coordinates {
	if !cmd.Flags().Changed("lat") && !cmd.Flags().Changed("lng") {
		return nil
	}
	lat, _ := cmd.Flags().GetFloat64("lat")
	lng, _ := cmd.Flags().GetFloat64("lng")
	return &models.Coordinates{Latitude: lat, Longitude: lng}
}

// readImageCandidate loads the photo and sniffs its content type from the
// bytes rather than trusting the file extension.
func readImageCandidate(path string) (*secondary.ImageCandidate, error) {
	if path == "" {
		return nil, fmt.Errorf("an image is required (use --image)")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}

	return &secondary.ImageCandidate{
		Name:        filepath.Base(path),
		ContentType: mimetype.Detect(data).String(),
		Data:        data,
	}, nil
}

func init() {
	submitCmd.Flags().StringP("category", "c", "", "Damage category (Flooding, Road Blocked, Potholes, Building Damage, Power Outage, Water Supply Issue, Other)")
	submitCmd.Flags().StringP("severity", "s", "", "Severity (Low, Medium, High)")
	submitCmd.Flags().StringP("description", "d", "", "What happened")
	submitCmd.Flags().Float64("lat", 0, "Latitude of the damage")
	submitCmd.Flags().Float64("lng", 0, "Longitude of the damage")
	submitCmd.Flags().StringP("image", "i", "", "Path to a photo of the damage")
}

// SubmitCmd returns the submit command
func SubmitCmd() *cobra.Command {
	return submitCmd
}
