// ABOUTME: Artwork interaction writes and the click-recording path
// ABOUTME: Every interaction write triggers a demand aggregate update
package analytics

import (
	"database/sql"
	"fmt"

	"github.com/artlens/gallery-guide/internal/models"
)

// LogInteraction inserts an interaction row and folds it into the
// artwork's demand aggregate as one transaction. The referenced query log
// must exist; a dangling query_id is rejected rather than recorded.
func (s *Store) LogInteraction(interaction *models.ArtworkInteraction) error {
	return s.withTx(func(tx *sql.Tx) error {
		exists, err := queryExists(tx, interaction.QueryID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", ErrQueryNotFound, interaction.QueryID)
		}

		_, err = tx.Exec(`
			INSERT INTO artwork_interactions
			(interaction_id, query_id, artwork_id, artwork_title,
			 artwork_artist, similarity_score, was_clicked,
			 click_duration, feedback_score)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, interaction.InteractionID, interaction.QueryID, interaction.ArtworkID,
			interaction.ArtworkTitle, interaction.ArtworkArtist,
			interaction.SimilarityScore, interaction.WasClicked,
			interaction.ClickDuration, nullableScore(interaction.FeedbackScore))
		if err != nil {
			return fmt.Errorf("failed to insert interaction: %w", err)
		}

		return upsertDemand(tx, interaction, s.now())
	})
}

// RecordClick marks the interaction for (queryID, artworkID) as clicked,
// credits the click to the artwork's demand aggregate and the owning
// session. Clicks without a matching interaction row are rejected so the
// demand counters can never drift from the raw signals.
func (s *Store) RecordClick(queryID string, artworkID int, duration float64) error {
	return s.withTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(`
			UPDATE artwork_interactions
			SET was_clicked = 1, click_duration = ?
			WHERE query_id = ? AND artwork_id = ?
		`, duration, queryID, artworkID)
		if err != nil {
			return fmt.Errorf("failed to mark interaction clicked: %w", err)
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return fmt.Errorf("%w: query %s, artwork %d", ErrInteractionNotFound, queryID, artworkID)
		}

		demand, err := getDemand(tx, artworkID)
		if err != nil {
			return err
		}
		if demand == nil {
			return fmt.Errorf("demand row missing for artwork %d", artworkID)
		}

		demand.TotalClicks++
		demand.TotalTimeViewed += duration
		demand.Rescore()

		if err := saveDemand(tx, demand); err != nil {
			return err
		}

		return bumpSessionView(tx, queryID, duration)
	})
}

// GetInteractions returns all interaction rows for a query
func (s *Store) GetInteractions(queryID string) ([]models.ArtworkInteraction, error) {
	rows, err := s.db.Conn().Query(`
		SELECT interaction_id, query_id, artwork_id, artwork_title,
		       artwork_artist, similarity_score, was_clicked,
		       click_duration, feedback_score
		FROM artwork_interactions
		WHERE query_id = ?
		ORDER BY similarity_score DESC
	`, queryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var interactions []models.ArtworkInteraction
	for rows.Next() {
		var (
			i     models.ArtworkInteraction
			score sql.NullInt64
		)
		if err := rows.Scan(&i.InteractionID, &i.QueryID, &i.ArtworkID,
			&i.ArtworkTitle, &i.ArtworkArtist, &i.SimilarityScore,
			&i.WasClicked, &i.ClickDuration, &score); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		i.FeedbackScore = int(score.Int64)
		interactions = append(interactions, i)
	}

	return interactions, rows.Err()
}

func nullableScore(score int) interface{} {
	if score == 0 {
		return nil
	}
	return score
}
