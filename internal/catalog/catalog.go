// ABOUTME: Artwork catalog loading and content fingerprinting
// ABOUTME: A missing catalog file degrades to an empty catalog, never fatal
package catalog

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"

	"github.com/artlens/gallery-guide/internal/models"
)

// Load reads the artwork catalog from a JSON file. A missing file is a
// valid degraded mode and returns an empty catalog; a present but
// malformed file is an error.
func Load(path string) ([]models.Artwork, error) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var artworks []models.Artwork
	if err := json.Unmarshal(data, &artworks); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	return artworks, nil
}

// Fingerprint computes a short stable hash of the catalog content. Object
// keys are serialized in sorted order so the same catalog always hashes
// identically; any field change produces a different fingerprint.
func Fingerprint(artworks []models.Artwork) (string, error) {
	raw, err := json.Marshal(artworks)
	if err != nil {
		return "", fmt.Errorf("failed to serialize catalog: %w", err)
	}

	// Round-trip through generic maps: encoding/json writes map keys in
	// sorted order, which pins the serialization independent of struct
	// field order.
	var generic []map[string]interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("failed to canonicalize catalog: %w", err)
	}

	canonical, err := json.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("failed to serialize canonical catalog: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return fmt.Sprintf("%x", sum)[:16], nil
}

// ByID returns the artwork with the given id, or nil if absent
func ByID(artworks []models.Artwork, id int) *models.Artwork {
	for i := range artworks {
		if artworks[i].ID == id {
			return &artworks[i]
		}
	}
	return nil
}

// ByArtist returns artworks whose artist name contains the given string,
// case-insensitively
func ByArtist(artworks []models.Artwork, artist string) []models.Artwork {
	var matches []models.Artwork
	for _, art := range artworks {
		if containsFold(art.Artist, artist) {
			matches = append(matches, art)
		}
	}
	return matches
}
