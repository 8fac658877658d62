package matching

import (
	"fmt"
	"math"
)

// CosineSimilarity returns the cosine of the angle between a and b, clamped
// into [0,1]. Negative alignment is floored to 0 and a zero-norm vector
// yields 0. Both vectors must have the same length; a mismatch is a caller
// bug and panics.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("matching: vector length mismatch %d != %d", len(a), len(b)))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return clamp01(dot / math.Sqrt(normA*normB))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
