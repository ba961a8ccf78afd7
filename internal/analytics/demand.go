// ABOUTME: ArtworkDemand row persistence inside write transactions
// ABOUTME: The aggregate math itself lives in models.ApplyInteraction
package analytics

import (
	"database/sql"
	"fmt"

	"github.com/artlens/gallery-guide/internal/models"
)

// upsertDemand folds one interaction into the artwork's demand row,
// creating it on first contact
func upsertDemand(tx dbtx, interaction *models.ArtworkInteraction, now float64) error {
	prev, err := getDemand(tx, interaction.ArtworkID)
	if err != nil {
		return err
	}

	next := models.ApplyInteraction(prev, interaction, now)
	return saveDemand(tx, &next)
}

// getDemand reads one demand row, or nil if the artwork has none yet
func getDemand(tx dbtx, artworkID int) (*models.ArtworkDemand, error) {
	var (
		d           models.ArtworkDemand
		lastQueried sql.NullFloat64
	)
	err := tx.QueryRow(`
		SELECT artwork_id, artwork_title, artwork_artist,
		       total_queries, total_clicks, avg_similarity,
		       total_time_viewed, positive_feedback, negative_feedback,
		       last_queried, demand_score
		FROM artwork_demand WHERE artwork_id = ?
	`, artworkID).Scan(&d.ArtworkID, &d.ArtworkTitle, &d.ArtworkArtist,
		&d.TotalQueries, &d.TotalClicks, &d.AvgSimilarity,
		&d.TotalTimeViewed, &d.PositiveFeedback, &d.NegativeFeedback,
		&lastQueried, &d.DemandScore)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get demand row: %w", err)
	}

	d.LastQueried = lastQueried.Float64
	return &d, nil
}

// saveDemand writes the full aggregate. The score always travels with the
// counters it was computed from.
func saveDemand(tx dbtx, d *models.ArtworkDemand) error {
	_, err := tx.Exec(`
		INSERT INTO artwork_demand
		(artwork_id, artwork_title, artwork_artist, total_queries,
		 total_clicks, avg_similarity, total_time_viewed,
		 positive_feedback, negative_feedback, last_queried, demand_score)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(artwork_id) DO UPDATE SET
			total_queries = excluded.total_queries,
			total_clicks = excluded.total_clicks,
			avg_similarity = excluded.avg_similarity,
			total_time_viewed = excluded.total_time_viewed,
			positive_feedback = excluded.positive_feedback,
			negative_feedback = excluded.negative_feedback,
			last_queried = excluded.last_queried,
			demand_score = excluded.demand_score,
			updated_at = CURRENT_TIMESTAMP
	`, d.ArtworkID, d.ArtworkTitle, d.ArtworkArtist, d.TotalQueries,
		d.TotalClicks, d.AvgSimilarity, d.TotalTimeViewed,
		d.PositiveFeedback, d.NegativeFeedback, d.LastQueried, d.DemandScore)
	if err != nil {
		return fmt.Errorf("failed to save demand row: %w", err)
	}
	return nil
}

// rescoreArtwork recomputes one artwork's demand score from its stored
// counters, inside the caller's transaction
func rescoreArtwork(tx dbtx, artworkID int) error {
	d, err := getDemand(tx, artworkID)
	if err != nil {
		return err
	}
	if d == nil {
		return nil
	}

	d.Rescore()
	return saveDemand(tx, d)
}

// GetDemand returns the current demand aggregate for one artwork, or nil
func (s *Store) GetDemand(artworkID int) (*models.ArtworkDemand, error) {
	return getDemand(s.db.Conn(), artworkID)
}
