// ABOUTME: CLI command exporting analytics for curators
// ABOUTME: Writes the full snapshot as JSON, YAML or CSV
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	exportPeriod string
	exportFormat string
	exportOutput string
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export analytics data",
		Long: `Export the analytics snapshot (artwork demand, recent queries,
hourly metrics) to a file.

Examples:
  gallery export --output analytics.json
  gallery export --export-format yaml --output analytics.yaml
  gallery export --export-format csv --period 7d --output report.csv`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&exportPeriod, "period", "all", "Export period: 24h, 7d, 30d, all")
	cmd.Flags().StringVar(&exportFormat, "export-format", "json", "File format: json, yaml, csv")
	cmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (required)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := validatePeriod(exportPeriod); err != nil {
		return err
	}

	a, cleanup, err := initApp()
	if err != nil {
		return err
	}
	defer cleanup()

	switch exportFormat {
	case "json":
		err = a.store.ExportToJSON(exportPeriod, exportOutput)
	case "yaml":
		err = a.store.ExportToYAML(exportPeriod, exportOutput)
	case "csv":
		err = a.store.ExportToCSV(exportPeriod, exportOutput)
	default:
		return fmt.Errorf("export format must be json, yaml or csv; got %q", exportFormat)
	}
	if err != nil {
		return fmt.Errorf("exporting analytics: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %s analytics to %s\n", exportPeriod, exportOutput)
	}
	return nil
}
