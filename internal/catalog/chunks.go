// ABOUTME: Chunk builder splitting artworks into searchable text fragments
// ABOUTME: Three chunks per artwork in deterministic catalog order
package catalog

import (
	"fmt"
	"strings"

	"github.com/artlens/gallery-guide/internal/models"
)

// BuildChunks produces the searchable chunks for a catalog: a title/artist
// composite, the description, and a style/year composite per artwork, in
// catalog order. Chunk array position is a stable index handle, so the
// ordering must never change between builds of the same catalog.
func BuildChunks(artworks []models.Artwork) []models.ArtworkChunk {
	chunks := make([]models.ArtworkChunk, 0, len(artworks)*3)

	for _, art := range artworks {
		chunks = append(chunks,
			models.ArtworkChunk{
				ArtworkID: art.ID,
				ChunkType: models.ChunkTitleArtist,
				Text:      fmt.Sprintf("%s by %s", art.Title, art.Artist),
				Metadata:  map[string]string{"year": yearLabel(art.Year)},
			},
			models.ArtworkChunk{
				ArtworkID: art.ID,
				ChunkType: models.ChunkDescription,
				Text:      art.Description,
			},
			models.ArtworkChunk{
				ArtworkID: art.ID,
				ChunkType: models.ChunkDetails,
				Text:      fmt.Sprintf("Style: %s. Year: %s.", styleLabel(art.Style), yearLabel(art.Year)),
			},
		)
	}

	return chunks
}

func styleLabel(style string) string {
	if style == "" {
		return "Unknown"
	}
	return style
}

func yearLabel(year int) string {
	if year == 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d", year)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
