package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/fieldreport/internal/config"
	"github.com/example/fieldreport/internal/db"
	"github.com/example/fieldreport/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the fieldreport environment",
		Long: `Health check for the fieldreport client.

Validates:
- Data directory (~/.fieldreport/)
- Offline queue database
- Backend reachability
- Saved session

Examples:
  fieldreport doctor          # Run full health check
  fieldreport doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkDataDir(),
				checkDatabase(),
				checkBackend(cmd),
				checkSession(cmd),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkDataDir validates the data directory exists and is writable
func checkDataDir() CheckResult {
	dir, err := config.DefaultDir()
	if err != nil {
		return CheckResult{Name: "Data directory", Status: "✗", Details: "  Cannot locate home directory"}
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return CheckResult{
			Name:    "Data directory",
			Status:  "⚠",
			Details: fmt.Sprintf("  %s does not exist yet; it is created on first use", dir),
		}
	}
	if err != nil || !info.IsDir() {
		return CheckResult{Name: "Data directory", Status: "✗", Details: fmt.Sprintf("  %s is not a usable directory", dir)}
	}

	probe := filepath.Join(dir, ".doctor-probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return CheckResult{Name: "Data directory", Status: "✗", Details: fmt.Sprintf("  %s is not writable", dir)}
	}
	os.Remove(probe)

	return CheckResult{Name: "Data directory", Status: "✓"}
}

// checkDatabase validates the offline queue database opens
func checkDatabase() CheckResult {
	database, err := db.GetDB()
	if err != nil {
		return CheckResult{Name: "Queue database", Status: "✗", Details: "  " + err.Error()}
	}
	if err := database.Ping(); err != nil {
		return CheckResult{Name: "Queue database", Status: "✗", Details: "  " + err.Error()}
	}
	return CheckResult{Name: "Queue database", Status: "✓"}
}

// checkBackend probes the configured backend
func checkBackend(cmd *cobra.Command) CheckResult {
	if !wire.Monitor().Online(cmd.Context()) {
		return CheckResult{
			Name:    "Backend",
			Status:  "⚠",
			Details: fmt.Sprintf("  %s unreachable; submissions will queue locally", wire.Config().BackendURL),
		}
	}
	return CheckResult{Name: "Backend", Status: "✓"}
}

// checkSession validates the saved session file, if any
func checkSession(cmd *cobra.Command) CheckResult {
	session, err := wire.AuthService().Current(cmd.Context())
	if err != nil {
		return CheckResult{Name: "Session", Status: "✗", Details: "  " + err.Error()}
	}
	if session == nil {
		return CheckResult{
			Name:    "Session",
			Status:  "⚠",
			Details: "  Not logged in; run: fieldreport login <username>",
		}
	}
	return CheckResult{Name: "Session", Status: "✓"}
}
