// ABOUTME: Feedback recording with fan-out to interactions and demand rows
// ABOUTME: Scores of 4-5 count positive, 1-2 negative, 3 affects neither
package analytics

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// RecordFeedback stores a feedback row for a query, stamps the score onto
// every interaction of that query, adjusts the positive/negative counters
// on every artwork the query surfaced, and recomputes those artworks'
// demand scores. The whole fan-out is one transaction. Returns the
// generated feedback id.
func (s *Store) RecordFeedback(queryID string, score int, comment string) (string, error) {
	if score < 1 || score > 5 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidScore, score)
	}

	feedbackID := uuid.New().String()

	err := s.withTx(func(tx *sql.Tx) error {
		exists, err := queryExists(tx, queryID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrQueryNotFound, queryID)
		}

		if _, err := tx.Exec(`
			INSERT INTO feedback (feedback_id, query_id, score, comment, timestamp)
			VALUES (?, ?, ?, ?, ?)
		`, feedbackID, queryID, score, comment, s.now()); err != nil {
			return fmt.Errorf("failed to insert feedback: %w", err)
		}

		if _, err := tx.Exec(`
			UPDATE artwork_interactions SET feedback_score = ? WHERE query_id = ?
		`, score, queryID); err != nil {
			return fmt.Errorf("failed to stamp feedback on interactions: %w", err)
		}

		switch {
		case score >= 4:
			if _, err := tx.Exec(`
				UPDATE artwork_demand SET positive_feedback = positive_feedback + 1
				WHERE artwork_id IN (SELECT artwork_id FROM artwork_interactions WHERE query_id = ?)
			`, queryID); err != nil {
				return fmt.Errorf("failed to count positive feedback: %w", err)
			}
		case score <= 2:
			if _, err := tx.Exec(`
				UPDATE artwork_demand SET negative_feedback = negative_feedback + 1
				WHERE artwork_id IN (SELECT artwork_id FROM artwork_interactions WHERE query_id = ?)
			`, queryID); err != nil {
				return fmt.Errorf("failed to count negative feedback: %w", err)
			}
		}

		return rescoreQueryArtworks(tx, queryID)
	})
	if err != nil {
		return "", err
	}

	return feedbackID, nil
}

// rescoreQueryArtworks recomputes the demand score for every artwork the
// query's interactions reference
func rescoreQueryArtworks(tx dbtx, queryID string) error {
	rows, err := tx.Query(`
		SELECT DISTINCT artwork_id FROM artwork_interactions WHERE query_id = ?
	`, queryID)
	if err != nil {
		return fmt.Errorf("failed to list artworks for query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var artworkIDs []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan artwork id: %w", err)
		}
		artworkIDs = append(artworkIDs, id)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range artworkIDs {
		if err := rescoreArtwork(tx, id); err != nil {
			return err
		}
	}
	return nil
}
