// ABOUTME: Root CLI command with global flags and subcommand wiring
// ABOUTME: Entry point used by main and by command tests
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
 ██████   █████  ██      ██      ███████ ██████  ██    ██     ██████  ██    ██ ██ ██████  ███████
██       ██   ██ ██      ██      ██      ██   ██  ██  ██     ██       ██    ██ ██ ██   ██ ██
██   ███ ███████ ██      ██      █████   ██████    ████      ██   ███ ██    ██ ██ ██   ██ █████
██    ██ ██   ██ ██      ██      ██      ██   ██    ██       ██    ██ ██    ██ ██ ██   ██ ██
 ██████  ██   ██ ███████ ███████ ███████ ██   ██    ██        ██████   ██████  ██ ██████  ███████
`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "AI guide and demand analytics for a gallery collection",
		Long: banner + `
An AI-powered gallery guide: ask questions about the collection in plain
language, and every question, click and rating feeds a demand score per
artwork that curators can export and act on.

Configuration comes from environment variables (or a .env file):
  GALLERY_DATA_FILE   artwork catalog JSON (default: data/artworks.json)
  GALLERY_CACHE_DIR   vector index cache   (default: data/cache)
  GALLERY_DB_PATH     analytics database   (default: data/analytics.db)
  OPENAI_API_KEY      enables semantic search and AI answers`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewTopCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewSweepCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
