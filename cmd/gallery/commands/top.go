// ABOUTME: CLI command listing artworks ranked by demand score
// ABOUTME: The curator-facing view of what visitors actually want to see
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	topPeriod string
	topLimit  int
)

// NewTopCmd creates the top command
func NewTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "List artworks by demand score",
		Long: `List artworks ranked by visitor demand.

The demand score blends query volume, click-through rate, match quality
and feedback into a 0-100 value per artwork.

Examples:
  gallery top
  gallery top --period 7d --limit 5
  gallery top --format json`,
		RunE: runTop,
	}

	cmd.Flags().StringVar(&topPeriod, "period", "all", "Ranking period: 24h, 7d, 30d, all")
	cmd.Flags().IntVar(&topLimit, "limit", 10, "Maximum artworks to show")

	return cmd
}

func runTop(cmd *cobra.Command, args []string) error {
	if err := validatePeriod(topPeriod); err != nil {
		return err
	}
	if err := validatePositiveInt(topLimit, "limit"); err != nil {
		return err
	}

	a, cleanup, err := initApp()
	if err != nil {
		return err
	}
	defer cleanup()

	artworks, err := a.store.GetTopArtworks(topPeriod, topLimit)
	if err != nil {
		return fmt.Errorf("getting top artworks: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(artworks, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	if len(artworks) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No artwork demand recorded yet")
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SCORE\tTITLE\tARTIST\tQUERIES\tCLICKS\tCTR\tFEEDBACK\n")
	for _, t := range artworks {
		fmt.Fprintf(w, "%.2f\t%s\t%s\t%d\t%d\t%.0f%%\t+%d/-%d\n",
			t.DemandScore,
			truncate(t.ArtworkTitle, 30),
			truncate(t.ArtworkArtist, 25),
			t.TotalQueries,
			t.TotalClicks,
			t.ClickThroughRate*100,
			t.PositiveFeedback,
			t.NegativeFeedback)
	}
	w.Flush()

	return nil
}
