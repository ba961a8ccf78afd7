// ABOUTME: Tests for system stats and demand-ranked top artworks
// ABOUTME: Period filtering on top artworks uses last_queried
package analytics

import (
	"testing"

	"github.com/artlens/gallery-guide/internal/models"
)

func TestGetSystemStats(t *testing.T) {
	store := newTestStore(t)

	logTestQuery(t, store, "q1", "s1", "v1", testNow-120)
	logTestQuery(t, store, "q2", "s2", "v2", testNow-60)
	logTestInteraction(t, store, "q1", 7, 0.8)
	logTestInteraction(t, store, "q2", 7, 0.7)

	err := store.LogQuery(&models.QueryLog{
		QueryID:      "q3",
		QueryText:    "tell me about impressionism",
		Timestamp:    testNow,
		SessionID:    "s1",
		VisitorID:    "v1",
		ResponseTime: 1.0,
		AIGenerated:  true,
		Language:     "en",
	})
	if err != nil {
		t.Fatalf("failed to log AI query: %v", err)
	}

	stats, err := store.GetSystemStats("all")
	if err != nil {
		t.Fatalf("failed to get system stats: %v", err)
	}
	if stats.TotalQueries != 3 {
		t.Errorf("expected 3 queries, got %d", stats.TotalQueries)
	}
	if stats.UniqueVisitors != 2 {
		t.Errorf("expected 2 unique visitors, got %d", stats.UniqueVisitors)
	}
	if stats.AIQueries != 1 {
		t.Errorf("expected 1 AI query, got %d", stats.AIQueries)
	}
	if stats.TopArtwork != "Artwork 7" {
		t.Errorf("expected top artwork by interaction count, got %q", stats.TopArtwork)
	}
	if len(stats.HourlyData) == 0 {
		t.Error("expected hourly data attached to stats")
	}
}

func TestGetSystemStatsEmpty(t *testing.T) {
	store := newTestStore(t)

	stats, err := store.GetSystemStats("24h")
	if err != nil {
		t.Fatalf("failed to get system stats: %v", err)
	}
	if stats.TotalQueries != 0 {
		t.Errorf("expected 0 queries, got %d", stats.TotalQueries)
	}
	if !floatEq(stats.AvgResponseTime, 0) {
		t.Errorf("expected 0 avg response time with no queries, got %f", stats.AvgResponseTime)
	}
	if stats.TopArtwork != "" {
		t.Errorf("expected no top artwork, got %q", stats.TopArtwork)
	}
}

func TestGetSystemStatsPeriodFilter(t *testing.T) {
	store := newTestStore(t)

	logTestQuery(t, store, "old", "s1", "v1", testNow-10*86400)
	logTestQuery(t, store, "recent", "s1", "v1", testNow-60)

	stats, err := store.GetSystemStats("24h")
	if err != nil {
		t.Fatalf("failed to get system stats: %v", err)
	}
	if stats.TotalQueries != 1 {
		t.Errorf("expected the 24h window to exclude the old query, got %d", stats.TotalQueries)
	}

	stats, err = store.GetSystemStats("30d")
	if err != nil {
		t.Fatalf("failed to get system stats: %v", err)
	}
	if stats.TotalQueries != 2 {
		t.Errorf("expected the 30d window to include both, got %d", stats.TotalQueries)
	}
}

func TestGetTopArtworksRankedByScore(t *testing.T) {
	store := newTestStore(t)

	logTestQuery(t, store, "q1", "s1", "v1", testNow)
	logTestInteraction(t, store, "q1", 1, 0.9)
	logTestInteraction(t, store, "q1", 2, 0.4)

	// A click pushes artwork 2 past artwork 1
	if err := store.RecordClick("q1", 2, 8.0); err != nil {
		t.Fatalf("failed to record click: %v", err)
	}

	top, err := store.GetTopArtworks("all", 10)
	if err != nil {
		t.Fatalf("failed to get top artworks: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 artworks, got %d", len(top))
	}
	if top[0].ArtworkID != 2 {
		t.Errorf("expected clicked artwork ranked first, got %d", top[0].ArtworkID)
	}
	if !floatEq(top[0].ClickThroughRate, 1.0) {
		t.Errorf("expected CTR 1.0, got %f", top[0].ClickThroughRate)
	}
	if !floatEq(top[1].ClickThroughRate, 0.0) {
		t.Errorf("expected CTR 0.0, got %f", top[1].ClickThroughRate)
	}
}

func TestGetTopArtworksPeriodFiltersDormant(t *testing.T) {
	store := newTestStore(t)

	// An artwork last queried 10 days ago
	store.now = func() float64 { return testNow - 10*86400 }
	logTestQuery(t, store, "old", "s1", "v1", testNow-10*86400)
	logTestInteraction(t, store, "old", 1, 0.8)

	// And one queried just now
	store.now = func() float64 { return testNow }
	logTestQuery(t, store, "recent", "s1", "v1", testNow)
	logTestInteraction(t, store, "recent", 2, 0.8)

	top, err := store.GetTopArtworks("7d", 10)
	if err != nil {
		t.Fatalf("failed to get top artworks: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected only the recently queried artwork, got %d", len(top))
	}
	if top[0].ArtworkID != 2 {
		t.Errorf("expected artwork 2, got %d", top[0].ArtworkID)
	}

	top, err = store.GetTopArtworks("all", 10)
	if err != nil {
		t.Fatalf("failed to get top artworks: %v", err)
	}
	if len(top) != 2 {
		t.Errorf("expected both artworks without a period filter, got %d", len(top))
	}
}

func TestGetTotalRecords(t *testing.T) {
	store := newTestStore(t)

	if err := store.StartSession(&models.VisitorSession{
		SessionID: "s1", VisitorID: "v1", StartTime: testNow,
	}); err != nil {
		t.Fatalf("failed to start session: %v", err)
	}
	logTestQuery(t, store, "q1", "s1", "v1", testNow)
	logTestInteraction(t, store, "q1", 1, 0.5)
	logTestInteraction(t, store, "q1", 2, 0.4)

	totals, err := store.GetTotalRecords()
	if err != nil {
		t.Fatalf("failed to get total records: %v", err)
	}
	if totals.Queries != 1 {
		t.Errorf("expected 1 query, got %d", totals.Queries)
	}
	if totals.Interactions != 2 {
		t.Errorf("expected 2 interactions, got %d", totals.Interactions)
	}
	if totals.Visitors != 1 {
		t.Errorf("expected 1 visitor, got %d", totals.Visitors)
	}
}
