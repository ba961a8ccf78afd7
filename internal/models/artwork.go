// ABOUTME: Artwork catalog types and derived search chunks
// ABOUTME: Chunks are the indexing granularity for semantic retrieval
package models

// Artwork is one catalog record. The catalog JSON file is the source of
// truth; the core never mutates artworks.
type Artwork struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Artist          string `json:"artist"`
	Description     string `json:"description"`
	Style           string `json:"style,omitempty"`
	Year            int    `json:"year,omitempty"`
	GalleryLocation string `json:"gallery_location,omitempty"`
}

// ChunkType identifies which part of an artwork a chunk was built from
type ChunkType string

const (
	ChunkTitleArtist ChunkType = "title_artist"
	ChunkDescription ChunkType = "description"
	ChunkDetails     ChunkType = "details"
)

// ArtworkChunk is one retrievable unit of artwork text. Chunks are
// regenerated from the catalog on every index build and only persist as
// part of the index cache.
type ArtworkChunk struct {
	ArtworkID int               `json:"artwork_id"`
	ChunkType ChunkType         `json:"chunk_type"`
	Text      string            `json:"text"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// SearchResult is one ranked artwork candidate for a query
type SearchResult struct {
	Artwork         Artwork `json:"artwork"`
	SimilarityScore float64 `json:"similarity_score"`
	MatchedChunk    string  `json:"matched_chunk"`
}
