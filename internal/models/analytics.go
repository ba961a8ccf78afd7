// ABOUTME: Raw interaction signal types persisted by the analytics ledger
// ABOUTME: QueryLog, ArtworkInteraction, VisitorSession and Feedback rows
package models

// QueryLog records one submitted visitor question. Rows are immutable once
// written; timestamps are seconds since epoch.
type QueryLog struct {
	QueryID       string  `json:"query_id"`
	QueryText     string  `json:"query_text"`
	Timestamp     float64 `json:"timestamp"`
	SessionID     string  `json:"session_id"`
	VisitorID     string  `json:"visitor_id"`
	ResponseTime  float64 `json:"response_time"`
	ArtworksFound int     `json:"artworks_found"`
	AIGenerated   bool    `json:"ai_generated"`
	Language      string  `json:"language"`
	DeviceType    string  `json:"device_type,omitempty"`
	Location      string  `json:"location,omitempty"`
}

// ArtworkInteraction records one artwork shown as a candidate for one
// query. Title and artist are denormalized at interaction time and may
// diverge from the current catalog. Click and feedback fields are mutated
// later by their respective events.
type ArtworkInteraction struct {
	InteractionID   string  `json:"interaction_id"`
	QueryID         string  `json:"query_id"`
	ArtworkID       int     `json:"artwork_id"`
	ArtworkTitle    string  `json:"artwork_title"`
	ArtworkArtist   string  `json:"artwork_artist"`
	SimilarityScore float64 `json:"similarity_score"`
	WasClicked      bool    `json:"was_clicked"`
	ClickDuration   float64 `json:"click_duration"`
	FeedbackScore   int     `json:"feedback_score,omitempty"`
}

// VisitorSession tracks one browsing session. Counters only ever grow.
type VisitorSession struct {
	SessionID           string  `json:"session_id"`
	VisitorID           string  `json:"visitor_id"`
	StartTime           float64 `json:"start_time"`
	EndTime             float64 `json:"end_time,omitempty"`
	TotalQueries        int     `json:"total_queries"`
	TotalArtworksViewed int     `json:"total_artworks_viewed"`
	TotalTimeSpent      float64 `json:"total_time_spent"`
	DeviceType          string  `json:"device_type,omitempty"`
	Location            string  `json:"location,omitempty"`
}

// Feedback is one visitor rating (1-5) for a query's results
type Feedback struct {
	FeedbackID string  `json:"feedback_id"`
	QueryID    string  `json:"query_id"`
	Score      int     `json:"score"`
	Comment    string  `json:"comment,omitempty"`
	Timestamp  float64 `json:"timestamp"`
}

// HourlyMetric is the per-hour rollup of query traffic. HourTimestamp is
// the bucket key in "2006-01-02 15:00:00" form.
type HourlyMetric struct {
	HourTimestamp   string  `json:"hour_timestamp"`
	TotalQueries    int     `json:"total_queries"`
	UniqueVisitors  int     `json:"unique_visitors"`
	AvgResponseTime float64 `json:"avg_response_time"`
	TopArtworkID    int     `json:"top_artwork_id,omitempty"`
	TopArtworkTitle string  `json:"top_artwork_title,omitempty"`
}
