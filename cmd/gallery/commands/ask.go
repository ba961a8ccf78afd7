// ABOUTME: CLI command to ask the gallery guide a question
// ABOUTME: Prints the answer plus a table of matched artworks
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/artlens/gallery-guide/internal/guide"
)

var (
	askSession  string
	askLanguage string
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask about the collection",
		Long: `Ask the gallery guide a question in plain language.

With OPENAI_API_KEY set, the guide searches the collection semantically
and writes an AI answer. Without it, queries are still logged but the
answer comes from a template.

Examples:
  gallery ask "show me impressionist landscapes"
  gallery ask --session 4f2a "anything with dramatic skies"
  gallery ask --format json "what should I see first?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().StringVar(&askSession, "session", "", "Session id to group questions from one visit")
	cmd.Flags().StringVar(&askLanguage, "language", "en", "Visitor language code")

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, cleanup, err := initApp()
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := a.service.ProcessQuery(args[0], guide.SessionMetadata{
		SessionID:  askSession,
		IP:         "cli",
		DeviceType: "cli",
		Language:   askLanguage,
	})
	if err != nil {
		return fmt.Errorf("processing query: %w", err)
	}

	if outputFormat == "json" {
		jsonData, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", jsonData)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", result.Answer)

	if len(result.Results) > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "SCORE\tID\tTITLE\tARTIST\tLOCATION\n")
		for _, r := range result.Results {
			fmt.Fprintf(w, "%.3f\t%d\t%s\t%s\t%s\n",
				r.SimilarityScore,
				r.Artwork.ID,
				truncate(r.Artwork.Title, 30),
				truncate(r.Artwork.Artist, 25),
				truncate(r.Artwork.GalleryLocation, 20))
		}
		w.Flush()
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "\nQuery %s answered in %.2fs\n", result.QueryID, result.ResponseTime)
	}

	return nil
}
