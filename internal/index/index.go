// ABOUTME: Semantic index mapping free-text queries to ranked artworks
// ABOUTME: Flat inner-product scan over L2-normalized chunk embeddings
package index

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/artlens/gallery-guide/internal/catalog"
	"github.com/artlens/gallery-guide/internal/models"
)

// ErrEmbeddingUnavailable wraps embedding backend failures so callers can
// fail closed instead of crashing.
var ErrEmbeddingUnavailable = errors.New("embedding backend unavailable")

// Embedder produces a fixed-dimension embedding vector for a text
type Embedder interface {
	GenerateEmbedding(text string) ([]float64, error)
}

// Options configures index construction
type Options struct {
	CacheDir  string
	Dimension int
}

// DefaultDimension matches the reference deployment's embedding model
const DefaultDimension = 384

// oversample is the nearest-neighbor overfetch factor. Multiple chunks of
// the same artwork can land in the top hits, so the scan fetches extra
// candidates before deduplicating down to top-k distinct artworks.
const oversample = 3

// Index is an immutable-once-built semantic index over artwork chunks.
// Search is read-only, so no locking is needed; a catalog change is
// handled by building a fresh Index and swapping the reference.
type Index struct {
	artworks    []models.Artwork
	chunks      []models.ArtworkChunk
	vectors     [][]float64
	dimension   int
	fingerprint string
	embedder    Embedder
	logger      *zap.Logger
}

// Load builds or restores the index for a catalog. A cached index is
// reused when its stored fingerprint matches the catalog; any cache
// inconsistency is treated as a miss and triggers a full rebuild.
func Load(artworks []models.Artwork, embedder Embedder, opts Options, logger *zap.Logger) (*Index, error) {
	if opts.Dimension <= 0 {
		opts.Dimension = DefaultDimension
	}

	fingerprint, err := catalog.Fingerprint(artworks)
	if err != nil {
		return nil, fmt.Errorf("failed to fingerprint catalog: %w", err)
	}

	idx := &Index{
		artworks:    artworks,
		dimension:   opts.Dimension,
		fingerprint: fingerprint,
		embedder:    embedder,
		logger:      logger,
	}

	if opts.CacheDir != "" {
		chunks, vectors, err := loadCache(opts.CacheDir, fingerprint, opts.Dimension)
		if err == nil {
			idx.chunks = chunks
			idx.vectors = vectors
			logger.Info("loaded vector index from cache",
				zap.String("fingerprint", fingerprint),
				zap.Int("chunks", len(chunks)))
			return idx, nil
		}
		logger.Warn("vector cache miss, rebuilding index", zap.Error(err))
	}

	if err := idx.build(); err != nil {
		return nil, err
	}

	if opts.CacheDir != "" {
		meta := Metadata{
			Fingerprint: fingerprint,
			Dimension:   opts.Dimension,
			ChunkCount:  len(idx.chunks),
			BuiltAt:     float64(time.Now().Unix()),
		}
		if err := saveCache(opts.CacheDir, meta, idx.chunks, idx.vectors); err != nil {
			// A failed cache write only costs a rebuild next startup
			logger.Warn("failed to persist vector cache", zap.Error(err))
		}
	}

	return idx, nil
}

// build embeds every chunk and normalizes the vectors in place
func (idx *Index) build() error {
	chunks := catalog.BuildChunks(idx.artworks)
	vectors := make([][]float64, 0, len(chunks))

	for _, chunk := range chunks {
		vec, err := idx.embedder.GenerateEmbedding(chunk.Text)
		if err != nil {
			return fmt.Errorf("%w: embedding chunk for artwork %d: %v",
				ErrEmbeddingUnavailable, chunk.ArtworkID, err)
		}
		if len(vec) != idx.dimension {
			return fmt.Errorf("embedding dimension %d, want %d", len(vec), idx.dimension)
		}
		vectors = append(vectors, normalize(vec))
	}

	idx.chunks = chunks
	idx.vectors = vectors
	idx.logger.Info("vector index built",
		zap.String("fingerprint", idx.fingerprint),
		zap.Int("chunks", len(chunks)))
	return nil
}

// Search returns up to topK distinct artworks ranked by similarity to the
// query, skipping scores below threshold. An empty catalog or index yields
// an empty result, not an error.
func (idx *Index) Search(query string, topK int, threshold float64) ([]models.SearchResult, error) {
	if len(idx.vectors) == 0 || topK <= 0 {
		return nil, nil
	}

	queryVec, err := idx.embedder.GenerateEmbedding(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEmbeddingUnavailable, err)
	}
	queryVec = normalize(queryVec)

	// Score every chunk; the flat scan is bounded by catalog size
	type hit struct {
		chunkIdx int
		score    float64
	}
	hits := make([]hit, len(idx.vectors))
	for i, vec := range idx.vectors {
		hits[i] = hit{chunkIdx: i, score: dot(queryVec, vec)}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	limit := topK * oversample
	if limit > len(hits) {
		limit = len(hits)
	}

	var results []models.SearchResult
	seen := make(map[int]bool)

	for _, h := range hits[:limit] {
		if h.score < threshold {
			continue
		}

		chunk := idx.chunks[h.chunkIdx]
		if seen[chunk.ArtworkID] {
			continue
		}

		// A stale cached chunk can reference a removed artwork
		art := catalog.ByID(idx.artworks, chunk.ArtworkID)
		if art == nil {
			continue
		}

		results = append(results, models.SearchResult{
			Artwork:         *art,
			SimilarityScore: h.score,
			MatchedChunk:    excerpt(chunk.Text, 100),
		})
		seen[chunk.ArtworkID] = true

		if len(results) >= topK {
			break
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	return results, nil
}

// Artworks returns the full catalog backing this index
func (idx *Index) Artworks() []models.Artwork {
	return idx.artworks
}

// ChunkCount returns the number of indexed chunks
func (idx *Index) ChunkCount() int {
	return len(idx.chunks)
}

// Fingerprint returns the catalog content hash this index was built from
func (idx *Index) Fingerprint() string {
	return idx.fingerprint
}

func excerpt(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen])
}
