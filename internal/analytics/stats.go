// ABOUTME: Read-side stats surface for dashboards and reports
// ABOUTME: System stats, top artworks by demand and record counts
package analytics

import (
	"database/sql"
	"fmt"

	"github.com/artlens/gallery-guide/internal/models"
)

// SystemStats summarizes query traffic over a period
type SystemStats struct {
	TotalQueries    int                   `json:"total_queries"`
	UniqueVisitors  int                   `json:"unique_visitors"`
	AvgResponseTime float64               `json:"avg_response_time"`
	AIQueries       int                   `json:"ai_queries"`
	TopArtwork      string                `json:"top_artwork,omitempty"`
	HourlyData      []models.HourlyMetric `json:"hourly_data"`
}

// TopArtwork is one demand-ranked artwork with its click-through rate
type TopArtwork struct {
	models.ArtworkDemand
	ClickThroughRate float64 `json:"click_through_rate"`
}

// TotalRecords holds overall row counts for the ledger
type TotalRecords struct {
	Queries      int `json:"queries"`
	Interactions int `json:"interactions"`
	Visitors     int `json:"visitors"`
}

// GetSystemStats returns traffic stats for a period ("24h", "7d", "30d"
// or "all") plus the last 24 hour buckets for charting
func (s *Store) GetSystemStats(period string) (*SystemStats, error) {
	cutoff, filtered := s.periodCutoff(period)

	stats := &SystemStats{}
	err := s.db.Conn().QueryRow(`
		SELECT COUNT(*),
		       COUNT(DISTINCT visitor_id),
		       COALESCE(AVG(response_time), 0),
		       COUNT(CASE WHEN ai_generated = 1 THEN 1 END)
		FROM query_logs
		WHERE (? = 0 OR timestamp >= ?)
	`, boolArg(filtered), cutoff).Scan(&stats.TotalQueries, &stats.UniqueVisitors,
		&stats.AvgResponseTime, &stats.AIQueries)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate system stats: %w", err)
	}

	var topTitle sql.NullString
	err = s.db.Conn().QueryRow(`
		SELECT ai.artwork_title
		FROM artwork_interactions ai
		JOIN query_logs ql ON ai.query_id = ql.query_id
		WHERE (? = 0 OR ql.timestamp >= ?)
		GROUP BY ai.artwork_id, ai.artwork_title
		ORDER BY COUNT(*) DESC
		LIMIT 1
	`, boolArg(filtered), cutoff).Scan(&topTitle)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to find top artwork: %w", err)
	}
	stats.TopArtwork = topTitle.String

	hourly, err := s.GetHourlyMetrics(24)
	if err != nil {
		return nil, err
	}
	stats.HourlyData = hourly

	return stats, nil
}

// GetTopArtworks returns artworks ranked by demand score. The period
// filters on last_queried so dormant artworks drop out of short windows.
func (s *Store) GetTopArtworks(period string, limit int) ([]TopArtwork, error) {
	cutoff, filtered := s.periodCutoff(period)

	rows, err := s.db.Conn().Query(`
		SELECT artwork_id, artwork_title, artwork_artist,
		       total_queries, total_clicks, avg_similarity,
		       total_time_viewed, positive_feedback, negative_feedback,
		       last_queried, demand_score
		FROM artwork_demand
		WHERE (? = 0 OR last_queried >= ?)
		ORDER BY demand_score DESC
		LIMIT ?
	`, boolArg(filtered), cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top artworks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	artworks := make([]TopArtwork, 0)
	for rows.Next() {
		var (
			t           TopArtwork
			lastQueried sql.NullFloat64
		)
		if err := rows.Scan(&t.ArtworkID, &t.ArtworkTitle, &t.ArtworkArtist,
			&t.TotalQueries, &t.TotalClicks, &t.AvgSimilarity,
			&t.TotalTimeViewed, &t.PositiveFeedback, &t.NegativeFeedback,
			&lastQueried, &t.DemandScore); err != nil {
			return nil, fmt.Errorf("failed to scan top artwork: %w", err)
		}
		t.LastQueried = lastQueried.Float64
		if t.TotalQueries > 0 {
			t.ClickThroughRate = float64(t.TotalClicks) / float64(t.TotalQueries)
		}
		artworks = append(artworks, t)
	}

	return artworks, rows.Err()
}

// GetTotalRecords returns overall ledger row counts
func (s *Store) GetTotalRecords() (*TotalRecords, error) {
	totals := &TotalRecords{}

	if err := s.db.Conn().QueryRow(`SELECT COUNT(*) FROM query_logs`).Scan(&totals.Queries); err != nil {
		return nil, fmt.Errorf("failed to count queries: %w", err)
	}
	if err := s.db.Conn().QueryRow(`SELECT COUNT(*) FROM artwork_interactions`).Scan(&totals.Interactions); err != nil {
		return nil, fmt.Errorf("failed to count interactions: %w", err)
	}
	if err := s.db.Conn().QueryRow(`SELECT COUNT(DISTINCT visitor_id) FROM visitor_sessions`).Scan(&totals.Visitors); err != nil {
		return nil, fmt.Errorf("failed to count visitors: %w", err)
	}

	return totals, nil
}

// boolArg converts a filter flag to the 0/1 the WHERE clauses expect
func boolArg(b bool) int {
	if b {
		return 1
	}
	return 0
}
