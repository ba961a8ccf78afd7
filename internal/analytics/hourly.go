// ABOUTME: Hourly traffic rollup recomputed on every query write
// ABOUTME: Full rescan of the hour bucket; buckets are small and short-lived
package analytics

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/artlens/gallery-guide/internal/models"
)

// hourBucket truncates an epoch timestamp to its containing hour and
// returns the bucket start plus the "YYYY-MM-DD HH:00:00" key. UTC keeps
// the key stable regardless of host timezone.
func hourBucket(timestamp float64) (time.Time, string) {
	start := time.Unix(int64(timestamp), 0).UTC().Truncate(time.Hour)
	return start, start.Format("2006-01-02 15") + ":00:00"
}

// refreshHourlyMetrics recomputes and upserts the rollup row for the hour
// containing the given timestamp, inside the caller's transaction
func refreshHourlyMetrics(tx dbtx, timestamp float64) error {
	start, key := hourBucket(timestamp)
	lo := float64(start.Unix())
	hi := lo + 3600

	var (
		totalQueries    int
		uniqueVisitors  int
		avgResponseTime float64
	)
	err := tx.QueryRow(`
		SELECT COUNT(*),
		       COUNT(DISTINCT visitor_id),
		       COALESCE(AVG(response_time), 0)
		FROM query_logs
		WHERE timestamp >= ? AND timestamp < ?
	`, lo, hi).Scan(&totalQueries, &uniqueVisitors, &avgResponseTime)
	if err != nil {
		return fmt.Errorf("failed to aggregate hour bucket: %w", err)
	}

	// Most-interacted artwork this hour; absent is a valid state and is
	// stored as NULL
	var (
		topID    sql.NullInt64
		topTitle sql.NullString
	)
	err = tx.QueryRow(`
		SELECT ai.artwork_id, MAX(ai.artwork_title)
		FROM artwork_interactions ai
		JOIN query_logs ql ON ai.query_id = ql.query_id
		WHERE ql.timestamp >= ? AND ql.timestamp < ?
		GROUP BY ai.artwork_id
		ORDER BY COUNT(*) DESC, ai.artwork_id ASC
		LIMIT 1
	`, lo, hi).Scan(&topID, &topTitle)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to find top artwork for hour: %w", err)
	}

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO hourly_metrics
		(hour_timestamp, total_queries, unique_visitors,
		 avg_response_time, top_artwork_id, top_artwork_title)
		VALUES (?, ?, ?, ?, ?, ?)
	`, key, totalQueries, uniqueVisitors, avgResponseTime, topID, topTitle)
	if err != nil {
		return fmt.Errorf("failed to upsert hourly metrics: %w", err)
	}
	return nil
}

// GetHourlyMetrics returns the most recent hour buckets, oldest first
func (s *Store) GetHourlyMetrics(limit int) ([]models.HourlyMetric, error) {
	rows, err := s.db.Conn().Query(`
		SELECT hour_timestamp, total_queries, unique_visitors,
		       avg_response_time, top_artwork_id, top_artwork_title
		FROM hourly_metrics
		ORDER BY hour_timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query hourly metrics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	metrics, err := scanHourlyMetrics(rows)
	if err != nil {
		return nil, err
	}

	// Reverse into chronological order for charting
	for i, j := 0, len(metrics)-1; i < j; i, j = i+1, j-1 {
		metrics[i], metrics[j] = metrics[j], metrics[i]
	}
	return metrics, nil
}

// hourlyMetricsSince returns the most recent hour buckets whose bucket
// starts at or after the cutoff's hour, oldest first. The bucket key
// format sorts lexicographically in time order, so the comparison runs
// on the key itself.
func (s *Store) hourlyMetricsSince(limit int, cutoff float64, filtered bool) ([]models.HourlyMetric, error) {
	_, cutoffKey := hourBucket(cutoff)
	rows, err := s.db.Conn().Query(`
		SELECT hour_timestamp, total_queries, unique_visitors,
		       avg_response_time, top_artwork_id, top_artwork_title
		FROM hourly_metrics
		WHERE (? = 0 OR hour_timestamp >= ?)
		ORDER BY hour_timestamp DESC
		LIMIT ?
	`, boolArg(filtered), cutoffKey, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query hourly metrics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	metrics, err := scanHourlyMetrics(rows)
	if err != nil {
		return nil, err
	}

	for i, j := 0, len(metrics)-1; i < j; i, j = i+1, j-1 {
		metrics[i], metrics[j] = metrics[j], metrics[i]
	}
	return metrics, nil
}

func scanHourlyMetrics(rows *sql.Rows) ([]models.HourlyMetric, error) {
	metrics := make([]models.HourlyMetric, 0)

	for rows.Next() {
		var (
			m        models.HourlyMetric
			topID    sql.NullInt64
			topTitle sql.NullString
		)
		if err := rows.Scan(&m.HourTimestamp, &m.TotalQueries, &m.UniqueVisitors,
			&m.AvgResponseTime, &topID, &topTitle); err != nil {
			return nil, fmt.Errorf("failed to scan hourly metric: %w", err)
		}
		m.TopArtworkID = int(topID.Int64)
		m.TopArtworkTitle = topTitle.String
		metrics = append(metrics, m)
	}

	return metrics, rows.Err()
}
