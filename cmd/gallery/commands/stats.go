// ABOUTME: CLI command showing visitor traffic statistics
// ABOUTME: Query counts, unique visitors, response times and hourly buckets
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsPeriod string

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show visitor traffic statistics",
		Long: `Show query traffic statistics for a period.

Examples:
  gallery stats
  gallery stats --period 7d
  gallery stats --format json`,
		RunE: runStats,
	}

	cmd.Flags().StringVar(&statsPeriod, "period", "24h", "Stats period: 24h, 7d, 30d, all")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	if err := validatePeriod(statsPeriod); err != nil {
		return err
	}

	a, cleanup, err := initApp()
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := a.store.GetSystemStats(statsPeriod)
	if err != nil {
		return fmt.Errorf("getting stats: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Period:            %s\n", statsPeriod)
	fmt.Fprintf(out, "Total queries:     %d\n", stats.TotalQueries)
	fmt.Fprintf(out, "Unique visitors:   %d\n", stats.UniqueVisitors)
	fmt.Fprintf(out, "Avg response time: %.3fs\n", stats.AvgResponseTime)
	fmt.Fprintf(out, "AI answers:        %d\n", stats.AIQueries)
	if stats.TopArtwork != "" {
		fmt.Fprintf(out, "Top artwork:       %s\n", stats.TopArtwork)
	}

	if len(stats.HourlyData) > 0 {
		fmt.Fprintln(out)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "HOUR\tQUERIES\tVISITORS\tAVG TIME\tTOP ARTWORK\n")
		for _, m := range stats.HourlyData {
			top := m.TopArtworkTitle
			if top == "" {
				top = "-"
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%.3fs\t%s\n",
				m.HourTimestamp, m.TotalQueries, m.UniqueVisitors,
				m.AvgResponseTime, truncate(top, 30))
		}
		w.Flush()
	}

	return nil
}
