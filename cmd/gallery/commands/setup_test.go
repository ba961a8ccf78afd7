// ABOUTME: Tests for shared command initialization
// ABOUTME: Startup must enforce the retention window on the analytics store

package commands

import (
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/artlens/gallery-guide/internal/analytics"
	"github.com/artlens/gallery-guide/internal/models"
)

func TestInitAppSweepsExpiredRowsAtStartup(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "analytics.db")
	t.Setenv("GALLERY_DB_PATH", dbPath)
	t.Setenv("GALLERY_DATA_FILE", filepath.Join(dir, "missing.json"))
	t.Setenv("GALLERY_CACHE_DIR", filepath.Join(dir, "cache"))
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("RETENTION_DAYS", "90")

	// Seed one query far outside the retention window
	seed, err := analytics.NewStore(dbPath, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to open seed store: %v", err)
	}
	old := float64(time.Now().Unix()) - 200*86400
	if err := seed.LogQuery(&models.QueryLog{
		QueryID:   "q-expired",
		QueryText: "tell me about the old wing",
		Timestamp: old,
		SessionID: "s1",
		VisitorID: "v1",
		Language:  "en",
	}); err != nil {
		t.Fatalf("failed to seed query: %v", err)
	}
	if err := seed.Close(); err != nil {
		t.Fatalf("failed to close seed store: %v", err)
	}

	a, cleanup, err := initApp()
	if err != nil {
		t.Fatalf("failed to init app: %v", err)
	}
	defer cleanup()

	queries, err := a.store.GetRecentQueries(10)
	if err != nil {
		t.Fatalf("failed to read queries: %v", err)
	}
	if len(queries) != 0 {
		t.Errorf("expected expired query swept at startup, found %d rows", len(queries))
	}
}
