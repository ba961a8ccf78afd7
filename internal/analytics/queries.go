// ABOUTME: Query log write path and recent-query reads
// ABOUTME: Each logged query refreshes its hour bucket in the same transaction
package analytics

import (
	"database/sql"
	"fmt"

	"github.com/artlens/gallery-guide/internal/models"
)

// LogQuery inserts a query log row, bumps the owning session's counters,
// and refreshes the hourly rollup for the bucket containing the query's
// timestamp, all atomically.
func (s *Store) LogQuery(q *models.QueryLog) error {
	return s.withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO query_logs
			(query_id, query_text, timestamp, session_id, visitor_id,
			 response_time, artworks_found, ai_generated, language,
			 device_type, location)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, q.QueryID, q.QueryText, q.Timestamp, q.SessionID, q.VisitorID,
			q.ResponseTime, q.ArtworksFound, q.AIGenerated, q.Language,
			nullString(q.DeviceType), nullString(q.Location))
		if err != nil {
			return fmt.Errorf("failed to insert query log: %w", err)
		}

		if err := bumpSessionQuery(tx, q.SessionID, q.ResponseTime); err != nil {
			return err
		}

		return refreshHourlyMetrics(tx, q.Timestamp)
	})
}

// queryExists reports whether a query log row exists, inside a transaction
func queryExists(tx dbtx, queryID string) (bool, error) {
	var one int
	err := tx.QueryRow(`SELECT 1 FROM query_logs WHERE query_id = ?`, queryID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check query log: %w", err)
	}
	return true, nil
}

// GetRecentQueries returns the most recent query logs, newest first
func (s *Store) GetRecentQueries(limit int) ([]models.QueryLog, error) {
	rows, err := s.db.Conn().Query(`
		SELECT query_id, query_text, timestamp, session_id, visitor_id,
		       response_time, artworks_found, ai_generated, language,
		       device_type, location
		FROM query_logs
		ORDER BY timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent queries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanQueryLogs(rows)
}

// recentQueriesSince returns the most recent query logs at or after the
// cutoff, newest first. With filtered false the cutoff is ignored.
func (s *Store) recentQueriesSince(limit int, cutoff float64, filtered bool) ([]models.QueryLog, error) {
	rows, err := s.db.Conn().Query(`
		SELECT query_id, query_text, timestamp, session_id, visitor_id,
		       response_time, artworks_found, ai_generated, language,
		       device_type, location
		FROM query_logs
		WHERE (? = 0 OR timestamp >= ?)
		ORDER BY timestamp DESC
		LIMIT ?
	`, boolArg(filtered), cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent queries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanQueryLogs(rows)
}

func scanQueryLogs(rows *sql.Rows) ([]models.QueryLog, error) {
	logs := make([]models.QueryLog, 0)

	for rows.Next() {
		var (
			q          models.QueryLog
			deviceType sql.NullString
			location   sql.NullString
		)
		if err := rows.Scan(&q.QueryID, &q.QueryText, &q.Timestamp, &q.SessionID,
			&q.VisitorID, &q.ResponseTime, &q.ArtworksFound, &q.AIGenerated,
			&q.Language, &deviceType, &location); err != nil {
			return nil, fmt.Errorf("failed to scan query log: %w", err)
		}
		q.DeviceType = deviceType.String
		q.Location = location.String
		logs = append(logs, q)
	}

	return logs, rows.Err()
}
