package topsis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// squaredDeviations writes each value's squared distance to the positive
// ideal into pos and to the negative ideal into neg.
func squaredDeviations(col []float64, id ideal, pos, neg []float64) {
	for i, v := range col {
		dp := v - id.positive
		dn := v - id.negative
		pos[i] = dp * dp
		neg[i] = dn * dn
	}
}

// euclidean folds per-criterion squared deviations into one distance per
// alternative. Columns are summed in criterion order so the result does not
// depend on how the squares were produced.
func euclidean(squares [][]float64, rows int) []float64 {
	dist := make([]float64, rows)
	for _, sq := range squares {
		floats.Add(dist, sq)
	}
	for i, s := range dist {
		dist[i] = math.Sqrt(s)
	}
	return dist
}

// requireFiniteDistances rejects infinite distances, and NaN distances unless
// a degenerate column was propagated on purpose.
func requireFiniteDistances(dPlus, dMinus []float64, allowNaN bool) error {
	for i := range dPlus {
		for _, d := range [...]float64{dPlus[i], dMinus[i]} {
			if math.IsInf(d, 0) || (math.IsNaN(d) && !allowNaN) {
				return fmt.Errorf("%w: alternative %d has distance %v", ErrNumericRange, i, d)
			}
		}
	}
	return nil
}
