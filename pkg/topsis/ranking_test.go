//nolint:testpackage // Tests need access to unexported ordering helpers
package topsis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelativeCloseness(t *testing.T) {
	tests := []struct {
		name          string
		dPlus, dMinus float64
		want          float64
	}{
		{"on the positive ideal", 0, 2, 1},
		{"on the negative ideal", 2, 0, 0},
		{"halfway", 1, 1, 0.5},
		{"on both ideals", 0, 0, 0.5},
		{"closer to positive", 1, 3, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, relativeCloseness(tt.dPlus, tt.dMinus))
		})
	}

	assert.True(t, math.IsNaN(relativeCloseness(math.NaN(), math.NaN())))
}

func TestNewRanking_Ordering(t *testing.T) {
	nan := math.NaN()
	dPlus := []float64{1, nan, 1, 0, nan, 3}
	dMinus := []float64{1, nan, 1, 2, nan, 1}

	ranking := newRanking(dPlus, dMinus)

	// 3 scores 1, then the 0.5 tie in ID order, then 0.25, then NaN in ID order.
	assert.Equal(t, []int{3, 0, 2, 5, 1, 4}, ranking.IDs())
	assert.Equal(t, []int{1, 4}, ranking.Degenerate())
	assert.Equal(t, 1.0, ranking[0].Score)
	assert.Equal(t, 0.0, ranking[0].PositiveDistance)
	assert.Equal(t, 2.0, ranking[0].NegativeDistance)
}

func TestCompareAlternatives(t *testing.T) {
	nan := math.NaN()
	high := Alternative{ID: 5, Score: 0.9}
	low := Alternative{ID: 1, Score: 0.1}
	tieA := Alternative{ID: 2, Score: 0.5}
	tieB := Alternative{ID: 7, Score: 0.5}
	nanA := Alternative{ID: 0, Score: nan}
	nanB := Alternative{ID: 3, Score: nan}

	assert.Negative(t, compareAlternatives(high, low))
	assert.Positive(t, compareAlternatives(low, high))
	assert.Negative(t, compareAlternatives(tieA, tieB))
	assert.Positive(t, compareAlternatives(tieB, tieA))
	assert.Negative(t, compareAlternatives(low, nanA), "every real score precedes NaN")
	assert.Positive(t, compareAlternatives(nanA, low))
	assert.Negative(t, compareAlternatives(nanA, nanB))
	assert.Zero(t, compareAlternatives(tieA, tieA))
}

func TestRanking_Accessors(t *testing.T) {
	r := Ranking{
		{ID: 2, Score: 0.8},
		{ID: 0, Score: 0.3},
		{ID: 1, Score: math.NaN()},
	}

	assert.Equal(t, []int{2, 0, 1}, r.IDs())
	scores := r.Scores()
	assert.Equal(t, []float64{0.8, 0.3}, scores[:2])
	assert.True(t, math.IsNaN(scores[2]))
	assert.Equal(t, []int{1}, r.Degenerate())
	assert.Empty(t, Ranking{}.Degenerate())
}
