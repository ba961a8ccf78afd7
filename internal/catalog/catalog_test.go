// ABOUTME: Tests for catalog loading and fingerprint stability
// ABOUTME: Verifies degraded empty-catalog mode and hash determinism
package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/artlens/gallery-guide/internal/models"
)

func testArtworks() []models.Artwork {
	return []models.Artwork{
		{ID: 1, Title: "Starry Night", Artist: "Van Gogh", Description: "A swirling night sky over a village", Style: "Post-Impressionism", Year: 1889},
		{ID: 2, Title: "The Persistence of Memory", Artist: "Dali", Description: "Melting clocks in a dreamscape", Style: "Surrealism", Year: 1931},
	}
}

func TestLoad_MissingFileReturnsEmptyCatalog(t *testing.T) {
	artworks, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil for missing file", err)
	}
	if len(artworks) != 0 {
		t.Errorf("Load() returned %d artworks, want 0", len(artworks))
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artworks.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail on malformed JSON")
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artworks.json")
	data := `[{"id": 1, "title": "Starry Night", "artist": "Van Gogh", "description": "Night sky", "year": 1889}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	artworks, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(artworks) != 1 {
		t.Fatalf("Load() returned %d artworks, want 1", len(artworks))
	}
	if artworks[0].Title != "Starry Night" || artworks[0].Year != 1889 {
		t.Errorf("Load() = %+v, fields not parsed", artworks[0])
	}
}

func TestFingerprint_Stable(t *testing.T) {
	a, err := Fingerprint(testArtworks())
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}
	b, err := Fingerprint(testArtworks())
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}

	if a != b {
		t.Errorf("Fingerprint not stable: %s != %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("Fingerprint length = %d, want 16", len(a))
	}
}

func TestFingerprint_ChangesWithContent(t *testing.T) {
	base, _ := Fingerprint(testArtworks())

	changed := testArtworks()
	changed[0].Title = "Sunflowers"

	got, err := Fingerprint(changed)
	if err != nil {
		t.Fatalf("Fingerprint() error = %v", err)
	}
	if got == base {
		t.Error("Fingerprint should change when a field changes")
	}
}

func TestFingerprint_EmptyCatalog(t *testing.T) {
	a, err := Fingerprint(nil)
	if err != nil {
		t.Fatalf("Fingerprint(nil) error = %v", err)
	}
	b, _ := Fingerprint([]models.Artwork{})
	if a != b {
		t.Errorf("nil and empty catalogs should hash identically: %s != %s", a, b)
	}
}

func TestByID(t *testing.T) {
	artworks := testArtworks()

	if got := ByID(artworks, 2); got == nil || got.Title != "The Persistence of Memory" {
		t.Errorf("ByID(2) = %+v, want Dali's piece", got)
	}
	if got := ByID(artworks, 99); got != nil {
		t.Errorf("ByID(99) = %+v, want nil", got)
	}
}

func TestByArtist(t *testing.T) {
	matches := ByArtist(testArtworks(), "van gogh")
	if len(matches) != 1 || matches[0].ID != 1 {
		t.Errorf("ByArtist(van gogh) = %+v, want artwork 1", matches)
	}
}
