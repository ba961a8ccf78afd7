// ABOUTME: ArtworkDemand aggregate and the demand scoring formula
// ABOUTME: Score is always recomputed from the counters, never incremented
package models

import "math"

// ArtworkDemand is the running aggregate of all signals for one artwork.
// One row per artwork, created lazily on first interaction.
type ArtworkDemand struct {
	ArtworkID        int     `json:"artwork_id"`
	ArtworkTitle     string  `json:"artwork_title"`
	ArtworkArtist    string  `json:"artwork_artist"`
	TotalQueries     int     `json:"total_queries"`
	TotalClicks      int     `json:"total_clicks"`
	AvgSimilarity    float64 `json:"avg_similarity"`
	TotalTimeViewed  float64 `json:"total_time_viewed"`
	PositiveFeedback int     `json:"positive_feedback"`
	NegativeFeedback int     `json:"negative_feedback"`
	LastQueried      float64 `json:"last_queried"`
	DemandScore      float64 `json:"demand_score"`
}

// ComputeDemandScore blends query volume, click-through, relevance and
// feedback into a 0-100 score. Volume saturates at 50 queries, and with no
// feedback signal the feedback term defaults to neutral (0.5) so new
// artworks are not biased toward zero.
func ComputeDemandScore(queries, clicks int, avgSimilarity float64, positive, negative int) float64 {
	if queries == 0 {
		return 0.0
	}

	clickRate := float64(clicks) / float64(queries)

	feedbackRate := 0.5
	if positive+negative > 0 {
		feedbackRate = float64(positive) / float64(positive+negative)
	}

	score := (math.Min(float64(queries)/50.0, 1.0)*0.4 +
		clickRate*0.3 +
		avgSimilarity*0.2 +
		feedbackRate*0.1) * 100

	return round2(score)
}

// ApplyInteraction folds one interaction event into a demand aggregate and
// returns the new aggregate. A nil prev seeds a fresh row from the event.
// AvgSimilarity is the incremental mean over exactly TotalQueries samples.
func ApplyInteraction(prev *ArtworkDemand, interaction *ArtworkInteraction, now float64) ArtworkDemand {
	var next ArtworkDemand

	if prev == nil {
		next = ArtworkDemand{
			ArtworkID:       interaction.ArtworkID,
			ArtworkTitle:    interaction.ArtworkTitle,
			ArtworkArtist:   interaction.ArtworkArtist,
			TotalQueries:    1,
			AvgSimilarity:   interaction.SimilarityScore,
			TotalTimeViewed: interaction.ClickDuration,
		}
		if interaction.WasClicked {
			next.TotalClicks = 1
		}
	} else {
		next = *prev
		next.TotalQueries++
		if interaction.WasClicked {
			next.TotalClicks++
		}
		next.AvgSimilarity = (prev.AvgSimilarity*float64(prev.TotalQueries) +
			interaction.SimilarityScore) / float64(next.TotalQueries)
		next.TotalTimeViewed += interaction.ClickDuration
	}

	next.LastQueried = now
	next.DemandScore = ComputeDemandScore(
		next.TotalQueries, next.TotalClicks, next.AvgSimilarity,
		next.PositiveFeedback, next.NegativeFeedback)

	return next
}

// Rescore recomputes DemandScore from the aggregate's own counters
func (d *ArtworkDemand) Rescore() {
	d.DemandScore = ComputeDemandScore(
		d.TotalQueries, d.TotalClicks, d.AvgSimilarity,
		d.PositiveFeedback, d.NegativeFeedback)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
