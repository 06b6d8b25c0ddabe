package topsis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// validateWeights rejects weights outside [0, +Inf).
func validateWeights(weights []float64) error {
	for j, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: criterion %d has weight %v", ErrInvalidWeight, j, w)
		}
	}
	return nil
}

// relativeWeights divides every weight by the largest, keeping the weighted
// matrix within [-1, 1] so squared deviations cannot overflow or vanish.
// Closeness is unchanged by a common weight factor. Zero weights stay zero and
// non-zero weights never underflow to zero.
func relativeWeights(weights []float64) []float64 {
	rel := make([]float64, len(weights))
	peak := floats.Max(weights)
	if peak == 0 {
		return rel
	}
	for j, w := range weights {
		rel[j] = w / peak
		if rel[j] == 0 && w != 0 {
			rel[j] = math.SmallestNonzeroFloat64
		}
	}
	return rel
}

// normalizeColumn rescales col in place to unit Euclidean norm and multiplies
// it by weight, returning the column's norm. A zero weight suppresses the
// criterion: every value becomes zero whatever the norm. Otherwise a zero
// norm leaves every value NaN, the result of 0/0.
func normalizeColumn(col []float64, weight float64) float64 {
	norm := floats.Norm(col, 2)
	switch {
	case weight == 0:
		clear(col)
		return norm
	case norm == 0:
		for i := range col {
			col[i] = math.NaN()
		}
		return 0
	}

	divisor := norm
	if math.IsInf(norm, 1) {
		// The norm of values near MaxFloat64 overflows; rescale by the
		// largest magnitude first.
		peak := math.Max(floats.Max(col), -floats.Min(col))
		for i := range col {
			col[i] /= peak
		}
		divisor = floats.Norm(col, 2)
	}
	// Divide rather than scale by 1/divisor, which overflows for subnormal norms.
	for i := range col {
		col[i] /= divisor
	}
	floats.Scale(weight, col)
	return norm
}
