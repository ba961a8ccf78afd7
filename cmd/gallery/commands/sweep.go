// ABOUTME: CLI command running the analytics retention sweep
// ABOUTME: Removes query logs past the retention window, with their children
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sweepDays int

// NewSweepCmd creates the sweep command
func NewSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete analytics data past the retention window",
		Long: `Delete query logs older than the retention window, along with the
interaction and feedback rows that reference them. Demand aggregates and
hourly rollups are kept.

Examples:
  gallery sweep
  gallery sweep --days 30`,
		RunE: runSweep,
	}

	cmd.Flags().IntVar(&sweepDays, "days", 0, "Retention window in days (default: RETENTION_DAYS)")

	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	a, cleanup, err := initApp()
	if err != nil {
		return err
	}
	defer cleanup()

	days := sweepDays
	if days == 0 {
		days = a.cfg.RetentionDays
	}
	if err := validatePositiveInt(days, "days"); err != nil {
		return err
	}

	deleted, err := a.store.RetentionSweep(days)
	if err != nil {
		return fmt.Errorf("running retention sweep: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d query logs older than %d days\n", deleted, days)
	}
	return nil
}
