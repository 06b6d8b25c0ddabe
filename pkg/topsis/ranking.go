package topsis

import (
	"cmp"
	"math"
	"slices"
)

// Alternative is one ranked row of the input matrix.
type Alternative struct {
	// ID is the zero-based row index of the alternative in the input.
	ID int `json:"id"`

	// Score is the relative closeness D- / (D+ + D-), in [0, 1].
	// NaN only under DegeneratePropagate.
	Score float64 `json:"score"`

	// PositiveDistance is the Euclidean distance to the positive ideal (D+).
	PositiveDistance float64 `json:"positive_distance"`

	// NegativeDistance is the Euclidean distance to the negative ideal (D-).
	NegativeDistance float64 `json:"negative_distance"`
}

// IsDegenerate reports whether the score could not be computed.
func (a Alternative) IsDegenerate() bool { return math.IsNaN(a.Score) }

// Ranking lists alternatives from closest to farthest from the ideal solution.
type Ranking []Alternative

// IDs returns the alternative IDs in rank order.
func (r Ranking) IDs() []int {
	ids := make([]int, len(r))
	for i, a := range r {
		ids[i] = a.ID
	}
	return ids
}

// Scores returns the scores in rank order.
func (r Ranking) Scores() []float64 {
	scores := make([]float64, len(r))
	for i, a := range r {
		scores[i] = a.Score
	}
	return scores
}

// Degenerate returns the IDs of alternatives with a NaN score, ascending.
// Empty when every score is defined.
func (r Ranking) Degenerate() []int {
	var ids []int
	for _, a := range r {
		if a.IsDegenerate() {
			ids = append(ids, a.ID)
		}
	}
	slices.Sort(ids)
	return ids
}

// relativeCloseness scores an alternative by its distances to both ideals.
// An alternative sitting on both ideals at once, which happens when every
// alternative has the same weighted profile, is equally close to each: 0.5.
func relativeCloseness(dPlus, dMinus float64) float64 {
	total := dPlus + dMinus
	if total == 0 {
		return 0.5
	}
	return dMinus / total
}

// newRanking pairs each alternative with its score and sorts the result.
func newRanking(dPlus, dMinus []float64) Ranking {
	ranking := make(Ranking, len(dPlus))
	for i := range dPlus {
		ranking[i] = Alternative{
			ID:               i,
			Score:            relativeCloseness(dPlus[i], dMinus[i]),
			PositiveDistance: dPlus[i],
			NegativeDistance: dMinus[i],
		}
	}
	slices.SortFunc(ranking, compareAlternatives)
	return ranking
}

// compareAlternatives orders by descending score, NaN last, then by ascending ID.
func compareAlternatives(a, b Alternative) int {
	aNaN, bNaN := a.IsDegenerate(), b.IsDegenerate()
	switch {
	case aNaN && bNaN:
		return cmp.Compare(a.ID, b.ID)
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a.Score > b.Score:
		return -1
	case a.Score < b.Score:
		return 1
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}
