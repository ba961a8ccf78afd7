// ABOUTME: Tests for the artwork chunk builder
// ABOUTME: Verifies chunk texts, ordering determinism and fallbacks
package catalog

import (
	"testing"

	"github.com/artlens/gallery-guide/internal/models"
)

func TestBuildChunks_ThreePerArtwork(t *testing.T) {
	chunks := BuildChunks(testArtworks())

	if len(chunks) != 6 {
		t.Fatalf("BuildChunks() produced %d chunks, want 6", len(chunks))
	}

	// Catalog order, then chunk type order within each artwork
	wantTypes := []models.ChunkType{
		models.ChunkTitleArtist, models.ChunkDescription, models.ChunkDetails,
		models.ChunkTitleArtist, models.ChunkDescription, models.ChunkDetails,
	}
	for i, chunk := range chunks {
		if chunk.ChunkType != wantTypes[i] {
			t.Errorf("chunk[%d].ChunkType = %s, want %s", i, chunk.ChunkType, wantTypes[i])
		}
	}

	for i := 0; i < 3; i++ {
		if chunks[i].ArtworkID != 1 {
			t.Errorf("chunk[%d].ArtworkID = %d, want 1", i, chunks[i].ArtworkID)
		}
	}
	for i := 3; i < 6; i++ {
		if chunks[i].ArtworkID != 2 {
			t.Errorf("chunk[%d].ArtworkID = %d, want 2", i, chunks[i].ArtworkID)
		}
	}
}

func TestBuildChunks_Texts(t *testing.T) {
	chunks := BuildChunks(testArtworks())

	if chunks[0].Text != "Starry Night by Van Gogh" {
		t.Errorf("title chunk = %q", chunks[0].Text)
	}
	if chunks[0].Metadata["year"] != "1889" {
		t.Errorf("title chunk year metadata = %q, want 1889", chunks[0].Metadata["year"])
	}
	if chunks[1].Text != "A swirling night sky over a village" {
		t.Errorf("description chunk = %q", chunks[1].Text)
	}
	if chunks[2].Text != "Style: Post-Impressionism. Year: 1889." {
		t.Errorf("details chunk = %q", chunks[2].Text)
	}
}

func TestBuildChunks_UnknownFallbacks(t *testing.T) {
	chunks := BuildChunks([]models.Artwork{
		{ID: 3, Title: "Untitled", Artist: "Anonymous", Description: "A mystery"},
	})

	if chunks[2].Text != "Style: Unknown. Year: Unknown." {
		t.Errorf("details chunk = %q, want Unknown fallbacks", chunks[2].Text)
	}
	if chunks[0].Metadata["year"] != "Unknown" {
		t.Errorf("year metadata = %q, want Unknown", chunks[0].Metadata["year"])
	}
}

func TestBuildChunks_Deterministic(t *testing.T) {
	a := BuildChunks(testArtworks())
	b := BuildChunks(testArtworks())

	for i := range a {
		if a[i].Text != b[i].Text || a[i].ArtworkID != b[i].ArtworkID {
			t.Fatalf("chunk[%d] differs between builds", i)
		}
	}
}

func TestBuildChunks_EmptyCatalog(t *testing.T) {
	if got := BuildChunks(nil); len(got) != 0 {
		t.Errorf("BuildChunks(nil) = %d chunks, want 0", len(got))
	}
}
