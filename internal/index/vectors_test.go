// ABOUTME: Tests for vector normalization and blob round-tripping
// ABOUTME: Verifies cosine-equivalence of inner product after normalizing
package index

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	vec := normalize([]float64{3, 4})
	if math.Abs(vec[0]-0.6) > 1e-12 || math.Abs(vec[1]-0.8) > 1e-12 {
		t.Errorf("normalize([3 4]) = %v, want [0.6 0.8]", vec)
	}

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if math.Abs(norm-1.0) > 1e-12 {
		t.Errorf("normalized vector has norm %v, want 1", math.Sqrt(norm))
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	vec := normalize([]float64{0, 0, 0})
	for i, v := range vec {
		if v != 0 {
			t.Errorf("normalize(zero)[%d] = %v, want 0", i, v)
		}
	}
}

func TestDot_SelfSimilarityIsOne(t *testing.T) {
	vec := normalize([]float64{1, 2, 3, 4})
	if got := dot(vec, vec); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("dot(v, v) = %v for unit v, want 1", got)
	}
}

func TestDot_MismatchedLengths(t *testing.T) {
	if got := dot([]float64{1}, []float64{1, 2}); got != 0.0 {
		t.Errorf("dot with mismatched lengths = %v, want 0", got)
	}
}

func TestVectorBlobRoundTrip(t *testing.T) {
	vectors := [][]float64{
		{0.1, -0.5, 3.25},
		{1e-9, 42.0, -7.125},
	}

	blob := vectorsToBlob(vectors)
	if len(blob) != 2*3*8 {
		t.Fatalf("blob length = %d, want 48", len(blob))
	}

	got := blobToVectors(blob, 2, 3)
	for i := range vectors {
		for j := range vectors[i] {
			if got[i][j] != vectors[i][j] {
				t.Errorf("vector[%d][%d] = %v, want %v", i, j, got[i][j], vectors[i][j])
			}
		}
	}
}

func TestVectorsToBlob_Empty(t *testing.T) {
	if blob := vectorsToBlob(nil); blob != nil {
		t.Errorf("vectorsToBlob(nil) = %v, want nil", blob)
	}
}
