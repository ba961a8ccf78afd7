// ABOUTME: Unified analytics store wrapping the SQLite ledger tables
// ABOUTME: Serializes multi-row writes through transactions under one mutex
package analytics

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Referential violations surface loudly instead of silently creating
// dangling references.
var (
	ErrQueryNotFound       = errors.New("query log not found")
	ErrInteractionNotFound = errors.New("no interaction recorded for this query and artwork")
	ErrInvalidScore        = errors.New("feedback score must be between 1 and 5")
)

// DefaultRetentionDays is the rolling retention window for raw query logs
const DefaultRetentionDays = 90

// dbtx is satisfied by both *sql.Tx and *sql.DB so row helpers can run
// inside or outside a transaction.
type dbtx interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// Store is the system of record for all interaction signals and the
// derived demand aggregates. Every write sequence that touches more than
// one row runs as a single transaction; readers never observe a
// partially-applied update.
type Store struct {
	db     *DB
	logger *zap.Logger
	mu     sync.Mutex
	now    func() float64
}

// NewStore opens the analytics store at the given database path
func NewStore(dbPath string, logger *zap.Logger) (*Store, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics database: %w", err)
	}
	return newStore(db, logger), nil
}

// NewStoreInMemory creates an in-memory analytics store (for testing)
func NewStoreInMemory(logger *zap.Logger) (*Store, error) {
	db, err := OpenInMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory database: %w", err)
	}
	return newStore(db, logger), nil
}

func newStore(db *DB, logger *zap.Logger) *Store {
	return &Store{
		db:     db,
		logger: logger,
		now:    func() float64 { return float64(time.Now().UnixNano()) / 1e9 },
	}
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database handle
func (s *Store) DB() *DB {
	return s.db
}

// withTx runs fn inside one exclusive transaction, rolling back in full on
// any error. Write volume here is analytics-grade, so the coarse lock
// favors correctness over throughput.
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Conn().Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// RetentionSweep deletes query logs older than the retention window, along
// with the interaction and feedback rows that reference them, and returns
// the number of query logs removed.
func (s *Store) RetentionSweep(retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	cutoff := s.now() - float64(retentionDays)*86400

	var deleted int64
	err := s.withTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			DELETE FROM feedback
			WHERE query_id IN (SELECT query_id FROM query_logs WHERE timestamp < ?)
		`, cutoff); err != nil {
			return fmt.Errorf("failed to sweep feedback: %w", err)
		}

		if _, err := tx.Exec(`
			DELETE FROM artwork_interactions
			WHERE query_id IN (SELECT query_id FROM query_logs WHERE timestamp < ?)
		`, cutoff); err != nil {
			return fmt.Errorf("failed to sweep interactions: %w", err)
		}

		res, err := tx.Exec(`DELETE FROM query_logs WHERE timestamp < ?`, cutoff)
		if err != nil {
			return fmt.Errorf("failed to sweep query logs: %w", err)
		}
		deleted, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		s.logger.Info("retention sweep removed old query logs",
			zap.Int64("deleted", deleted),
			zap.Int("retention_days", retentionDays))
	}
	return deleted, nil
}

// periodCutoff maps a stats period to a timestamp lower bound. The second
// return is false for "all", meaning no filter.
func (s *Store) periodCutoff(period string) (float64, bool) {
	switch period {
	case "24h":
		return s.now() - 86400, true
	case "7d":
		return s.now() - 604800, true
	case "30d":
		return s.now() - 2592000, true
	default:
		return 0, false
	}
}
