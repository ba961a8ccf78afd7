// ABOUTME: On-disk cache for the vector index keyed by catalog fingerprint
// ABOUTME: Three co-located artifacts; any inconsistency is a cache miss
package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/artlens/gallery-guide/internal/models"
)

const (
	vectorsFile  = "index.bin"
	chunksFile   = "chunks.json"
	metadataFile = "metadata.json"
)

// Metadata describes a persisted index build
type Metadata struct {
	Fingerprint string  `json:"fingerprint"`
	Dimension   int     `json:"dimension"`
	ChunkCount  int     `json:"chunk_count"`
	BuiltAt     float64 `json:"built_at"`
}

// loadCache restores a persisted index if all three artifacts exist, agree
// with each other, and match the current catalog fingerprint. Every other
// state is reported as an error and handled as a cache miss upstream.
func loadCache(dir, fingerprint string, dimension int) ([]models.ArtworkChunk, [][]float64, error) {
	metaRaw, err := os.ReadFile(filepath.Join(dir, metadataFile)) // #nosec G304
	if err != nil {
		return nil, nil, fmt.Errorf("metadata unreadable: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(metaRaw, &meta); err != nil {
		return nil, nil, fmt.Errorf("metadata corrupt: %w", err)
	}
	if meta.Fingerprint != fingerprint {
		return nil, nil, fmt.Errorf("fingerprint mismatch: cached %s, catalog %s", meta.Fingerprint, fingerprint)
	}
	if meta.Dimension != dimension {
		return nil, nil, fmt.Errorf("dimension mismatch: cached %d, want %d", meta.Dimension, dimension)
	}

	chunksRaw, err := os.ReadFile(filepath.Join(dir, chunksFile)) // #nosec G304
	if err != nil {
		return nil, nil, fmt.Errorf("chunks unreadable: %w", err)
	}
	var chunks []models.ArtworkChunk
	if err := json.Unmarshal(chunksRaw, &chunks); err != nil {
		return nil, nil, fmt.Errorf("chunks corrupt: %w", err)
	}
	if len(chunks) != meta.ChunkCount {
		return nil, nil, fmt.Errorf("chunk count mismatch: %d stored, metadata says %d", len(chunks), meta.ChunkCount)
	}

	blob, err := os.ReadFile(filepath.Join(dir, vectorsFile)) // #nosec G304
	if err != nil {
		return nil, nil, fmt.Errorf("vectors unreadable: %w", err)
	}
	if len(blob) != meta.ChunkCount*meta.Dimension*8 {
		return nil, nil, fmt.Errorf("vector blob size %d, want %d", len(blob), meta.ChunkCount*meta.Dimension*8)
	}

	return chunks, blobToVectors(blob, meta.ChunkCount, meta.Dimension), nil
}

// saveCache persists the index artifacts. Each file is written to a temp
// path and renamed into place so a crash mid-write never leaves a
// partially written artifact that could pass validation.
func saveCache(dir string, meta Metadata, chunks []models.ArtworkChunk, vectors [][]float64) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	chunksRaw, err := json.Marshal(chunks)
	if err != nil {
		return fmt.Errorf("failed to serialize chunks: %w", err)
	}
	metaRaw, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("failed to serialize metadata: %w", err)
	}

	if err := writeFileAtomic(filepath.Join(dir, vectorsFile), vectorsToBlob(vectors)); err != nil {
		return err
	}
	if err := writeFileAtomic(filepath.Join(dir, chunksFile), chunksRaw); err != nil {
		return err
	}
	// Metadata last: without it the other artifacts are never trusted
	return writeFileAtomic(filepath.Join(dir, metadataFile), metaRaw)
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to rename %s: %w", tmp, err)
	}
	return nil
}
