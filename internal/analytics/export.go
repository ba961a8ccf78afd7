// ABOUTME: Export of analytics data for gallery curators
// ABOUTME: Supports JSON, YAML and CSV output formats
package analytics

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/artlens/gallery-guide/internal/models"
)

const (
	exportQueryLimit  = 1000
	exportHourlyLimit = 168 // one week of hourly buckets
	csvQueryLimit     = 50
)

// ExportBundle is the complete exportable analytics snapshot. Slices are
// always non-nil so an empty database still serializes to empty arrays.
type ExportBundle struct {
	Artworks      []models.ArtworkDemand `yaml:"artworks" json:"artworks"`
	Queries       []models.QueryLog      `yaml:"queries" json:"queries"`
	HourlyMetrics []models.HourlyMetric  `yaml:"hourly_metrics" json:"hourly_metrics"`
	ExportedAt    string                 `yaml:"exported_at" json:"exported_at"`
	Period        string                 `yaml:"period" json:"period"`
	TotalRecords  TotalRecords           `yaml:"total_records" json:"total_records"`
}

// Export assembles the analytics snapshot for a period ("24h", "7d",
// "30d" or "all"). Query logs and hourly buckets outside the window are
// excluded; demand aggregates are all-time running totals and are not
// window-sliced.
func (s *Store) Export(period string) (*ExportBundle, error) {
	cutoff, filtered := s.periodCutoff(period)

	bundle := &ExportBundle{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Period:     period,
	}

	artworks, err := s.listDemand()
	if err != nil {
		return nil, err
	}
	bundle.Artworks = artworks

	queries, err := s.recentQueriesSince(exportQueryLimit, cutoff, filtered)
	if err != nil {
		return nil, err
	}
	bundle.Queries = queries

	hourly, err := s.hourlyMetricsSince(exportHourlyLimit, cutoff, filtered)
	if err != nil {
		return nil, err
	}
	bundle.HourlyMetrics = hourly

	totals, err := s.GetTotalRecords()
	if err != nil {
		return nil, err
	}
	bundle.TotalRecords = *totals

	return bundle, nil
}

// listDemand returns every demand aggregate ordered by score
func (s *Store) listDemand() ([]models.ArtworkDemand, error) {
	rows, err := s.db.Conn().Query(`
		SELECT artwork_id, artwork_title, artwork_artist,
		       total_queries, total_clicks, avg_similarity,
		       total_time_viewed, positive_feedback, negative_feedback,
		       last_queried, demand_score
		FROM artwork_demand
		ORDER BY demand_score DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query artwork demand: %w", err)
	}
	defer func() { _ = rows.Close() }()

	artworks := make([]models.ArtworkDemand, 0)
	for rows.Next() {
		var (
			d           models.ArtworkDemand
			lastQueried sql.NullFloat64
		)
		if err := rows.Scan(&d.ArtworkID, &d.ArtworkTitle, &d.ArtworkArtist,
			&d.TotalQueries, &d.TotalClicks, &d.AvgSimilarity,
			&d.TotalTimeViewed, &d.PositiveFeedback, &d.NegativeFeedback,
			&lastQueried, &d.DemandScore); err != nil {
			return nil, fmt.Errorf("failed to scan artwork demand: %w", err)
		}
		d.LastQueried = lastQueried.Float64
		artworks = append(artworks, d)
	}

	return artworks, rows.Err()
}

// ExportToJSON writes the snapshot to a JSON file
func (s *Store) ExportToJSON(period, outputPath string) error {
	bundle, err := s.Export(period)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(outputPath) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(bundle); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// ExportToYAML writes the snapshot to a YAML file
func (s *Store) ExportToYAML(period, outputPath string) error {
	bundle, err := s.Export(period)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(outputPath) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(bundle); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// ExportToCSV writes a curator-friendly CSV report: the artwork demand
// table, a blank row, then the most recent queries.
func (s *Store) ExportToCSV(period, outputPath string) error {
	bundle, err := s.Export(period)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(outputPath) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)

	header := []string{"Artwork ID", "Title", "Artist", "Total Queries",
		"Total Clicks", "Avg Similarity", "Demand Score"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, d := range bundle.Artworks {
		record := []string{
			strconv.Itoa(d.ArtworkID),
			d.ArtworkTitle,
			d.ArtworkArtist,
			strconv.Itoa(d.TotalQueries),
			strconv.Itoa(d.TotalClicks),
			strconv.FormatFloat(d.AvgSimilarity, 'f', 3, 64),
			strconv.FormatFloat(d.DemandScore, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	// Blank row separates the two sections
	if err := w.Write([]string{""}); err != nil {
		return fmt.Errorf("failed to write CSV separator: %w", err)
	}

	if err := w.Write([]string{"Query", "Timestamp", "Artworks Found", "Response Time"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	queries := bundle.Queries
	if len(queries) > csvQueryLimit {
		queries = queries[:csvQueryLimit]
	}
	for _, q := range queries {
		record := []string{
			q.QueryText,
			time.Unix(int64(q.Timestamp), 0).UTC().Format(time.RFC3339),
			strconv.Itoa(q.ArtworksFound),
			strconv.FormatFloat(q.ResponseTime, 'f', 3, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}
