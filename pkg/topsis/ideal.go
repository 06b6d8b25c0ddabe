package topsis

import "gonum.org/v1/gonum/floats"

// ideal holds one criterion's coordinates of the positive and negative ideal
// solutions. Neither needs to belong to a real alternative.
type ideal struct {
	positive float64
	negative float64
}

// idealFor picks the best and worst weighted value of col. For a benefit
// criterion the best is the maximum; for a cost criterion, the minimum.
func idealFor(col []float64, benefit bool) ideal {
	hi, lo := floats.Max(col), floats.Min(col)
	if benefit {
		return ideal{positive: hi, negative: lo}
	}
	return ideal{positive: lo, negative: hi}
}
