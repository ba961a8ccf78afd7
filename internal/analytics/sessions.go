// ABOUTME: Visitor session persistence for the analytics ledger
// ABOUTME: Session counters only ever grow, bumped inside write transactions
package analytics

import (
	"database/sql"
	"fmt"

	"github.com/artlens/gallery-guide/internal/models"
)

// SessionExists reports whether a session row is already present. Callers
// check this before StartSession; idempotency is the caller's job.
func (s *Store) SessionExists(sessionID string) (bool, error) {
	var one int
	err := s.db.Conn().QueryRow(`SELECT 1 FROM visitor_sessions WHERE session_id = ?`, sessionID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return true, nil
}

// StartSession inserts a new visitor session row
func (s *Store) StartSession(session *models.VisitorSession) error {
	return s.withTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO visitor_sessions
			(session_id, visitor_id, start_time, device_type, location)
			VALUES (?, ?, ?, ?, ?)
		`, session.SessionID, session.VisitorID, session.StartTime,
			nullString(session.DeviceType), nullString(session.Location))
		if err != nil {
			return fmt.Errorf("failed to insert session: %w", err)
		}
		return nil
	})
}

// GetSession retrieves one session row, or nil if absent
func (s *Store) GetSession(sessionID string) (*models.VisitorSession, error) {
	var (
		sess       models.VisitorSession
		endTime    sql.NullFloat64
		deviceType sql.NullString
		location   sql.NullString
	)
	err := s.db.Conn().QueryRow(`
		SELECT session_id, visitor_id, start_time, end_time,
		       total_queries, total_artworks_viewed, total_time_spent,
		       device_type, location
		FROM visitor_sessions WHERE session_id = ?
	`, sessionID).Scan(&sess.SessionID, &sess.VisitorID, &sess.StartTime, &endTime,
		&sess.TotalQueries, &sess.TotalArtworksViewed, &sess.TotalTimeSpent,
		&deviceType, &location)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	sess.EndTime = endTime.Float64
	sess.DeviceType = deviceType.String
	sess.Location = location.String
	return &sess, nil
}

// bumpSessionQuery increments the query counter and time spent for the
// session owning a query, inside the caller's transaction
func bumpSessionQuery(tx dbtx, sessionID string, responseTime float64) error {
	_, err := tx.Exec(`
		UPDATE visitor_sessions
		SET total_queries = total_queries + 1,
		    total_time_spent = total_time_spent + ?
		WHERE session_id = ?
	`, responseTime, sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session counters: %w", err)
	}
	return nil
}

// bumpSessionView credits a click's view time to the session that issued
// the query, resolved through the query log
func bumpSessionView(tx dbtx, queryID string, duration float64) error {
	_, err := tx.Exec(`
		UPDATE visitor_sessions
		SET total_artworks_viewed = total_artworks_viewed + 1,
		    total_time_spent = total_time_spent + ?
		WHERE session_id = (SELECT session_id FROM query_logs WHERE query_id = ?)
	`, duration, queryID)
	if err != nil {
		return fmt.Errorf("failed to update session view counters: %w", err)
	}
	return nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
