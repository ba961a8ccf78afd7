// ABOUTME: Vector math and binary encoding for embedding storage
// ABOUTME: Little-endian float64 blobs, L2 normalization and dot product
package index

import (
	"encoding/binary"
	"math"
)

// normalize returns the L2-normalized copy of a vector. After
// normalization, inner product equals cosine similarity. A zero vector is
// returned unchanged.
func normalize(vec []float64) []float64 {
	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec
	}

	norm = math.Sqrt(norm)
	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = v / norm
	}
	return out
}

func dot(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0.0
	}
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// vectorsToBlob flattens row-major float64 vectors into a binary blob
func vectorsToBlob(vectors [][]float64) []byte {
	if len(vectors) == 0 {
		return nil
	}
	dim := len(vectors[0])
	blob := make([]byte, len(vectors)*dim*8)
	offset := 0
	for _, vec := range vectors {
		for _, v := range vec {
			binary.LittleEndian.PutUint64(blob[offset:], math.Float64bits(v))
			offset += 8
		}
	}
	return blob
}

// blobToVectors splits a binary blob back into count vectors of dim floats
func blobToVectors(blob []byte, count, dim int) [][]float64 {
	vectors := make([][]float64, count)
	offset := 0
	for i := 0; i < count; i++ {
		vec := make([]float64, dim)
		for j := 0; j < dim; j++ {
			vec[j] = math.Float64frombits(binary.LittleEndian.Uint64(blob[offset:]))
			offset += 8
		}
		vectors[i] = vec
	}
	return vectors
}
