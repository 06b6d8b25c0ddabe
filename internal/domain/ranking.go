// Package domain ranking defines the contracts for multi-criteria ranking of
// alternatives and the mapping from the TOPSIS core's output to those contracts.
//
// Ranking Architecture:
//   - Criteria carry a name, a non-negative weight and a benefit/cost direction
//   - Alternative values travel column-major, one column per criterion
//   - Results identify alternatives by caller-supplied IDs, not row indexes
//   - Winner determination with deterministic tie reporting
//   - Degenerate scores are flagged explicitly since JSON cannot carry NaN
package domain

import (
	"fmt"

	"github.com/ahrav/go-topsis/pkg/topsis"
)

// Criterion describes one decision criterion.
type Criterion struct {
	// Name identifies the criterion; unique within a request.
	Name string `json:"name" validate:"required,max=128"`

	// Weight scales the criterion's influence. Weights need not sum to one;
	// zero excludes the criterion without reshaping the values.
	Weight float64 `json:"weight" validate:"min=0"`

	// Benefit is true when higher values are preferred, false for a cost.
	Benefit bool `json:"benefit"`
}

// RankingRequest is the input of the RankAlternatives operation.
type RankingRequest struct {
	// Criteria are the decision criteria, in the order of the value columns.
	Criteria []Criterion `json:"criteria" validate:"required,min=1,dive"`

	// AlternativeIDs name the alternatives, in the order of the value rows.
	AlternativeIDs []string `json:"alternative_ids" validate:"required,min=1,dive,required"`

	// Values holds len(AlternativeIDs)*len(Criteria) scores in column-major
	// order: every alternative's value on Criteria[0], then on Criteria[1]...
	Values []float64 `json:"values" validate:"required,min=1"`

	// Policy selects how zero-norm criterion columns are treated.
	// Empty defers to the ranker's configured policy.
	Policy topsis.DegeneratePolicy `json:"policy,omitempty" validate:"omitempty,oneof=reject propagate"`

	// ClientIdempotencyKey enables deterministic event generation.
	ClientIdempotencyKey string `json:"client_idempotency_key" validate:"required"`
}

// Validate checks struct constraints plus the cross-field shape rules:
// unique criterion names, unique alternative IDs, and one value per
// alternative per criterion.
func (r *RankingRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRankingRequest, err)
	}

	names := make([]string, len(r.Criteria))
	for i, c := range r.Criteria {
		names[i] = c.Name
	}
	if err := requireUnique("criteria", names); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRankingRequest, err)
	}
	if err := requireUnique("alternative_ids", r.AlternativeIDs); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRankingRequest, err)
	}

	if want := len(r.AlternativeIDs) * len(r.Criteria); len(r.Values) != want {
		return fmt.Errorf("%w: %d values for %d alternatives on %d criteria, want %d",
			ErrInvalidRankingRequest, len(r.Values), len(r.AlternativeIDs), len(r.Criteria), want)
	}
	return nil
}

// Weights returns the criterion weights in column order.
func (r *RankingRequest) Weights() []float64 {
	weights := make([]float64, len(r.Criteria))
	for i, c := range r.Criteria {
		weights[i] = c.Weight
	}
	return weights
}

// Directions returns the benefit flags in column order.
func (r *RankingRequest) Directions() []bool {
	benefit := make([]bool, len(r.Criteria))
	for i, c := range r.Criteria {
		benefit[i] = c.Benefit
	}
	return benefit
}

// RankedAlternative is one alternative's place in a RankingResult.
type RankedAlternative struct {
	// Position is the one-based rank.
	Position int `json:"position" validate:"min=1"`

	// Index is the alternative's zero-based row in the request.
	Index int `json:"index" validate:"min=0"`

	// AlternativeID is the caller's identifier for the alternative.
	AlternativeID string `json:"alternative_id" validate:"required"`

	// Score is the relative closeness to the ideal solution.
	// Zero when Degenerate is set.
	Score float64 `json:"score" validate:"min=0,max=1"`

	// PositiveDistance is the distance to the positive ideal solution.
	PositiveDistance float64 `json:"positive_distance" validate:"min=0"`

	// NegativeDistance is the distance to the negative ideal solution.
	NegativeDistance float64 `json:"negative_distance" validate:"min=0"`

	// Degenerate marks an alternative whose score is undefined because a
	// criterion column had zero norm.
	Degenerate bool `json:"degenerate,omitempty"`
}

// RankingResult is the output of the RankAlternatives operation.
type RankingResult struct {
	// Ranked lists every alternative, best first.
	Ranked []RankedAlternative `json:"ranked" validate:"required,min=1,dive"`

	// WinnerID identifies the highest-ranked alternative with a defined score.
	// Empty when every score is degenerate.
	WinnerID string `json:"winner_id,omitempty"`

	// TiedWithIDs lists alternatives whose score equals the winner's exactly,
	// in rank order.
	TiedWithIDs []string `json:"tied_with_ids,omitempty"`

	// DegenerateIDs lists alternatives with an undefined score, in rank order.
	DegenerateIDs []string `json:"degenerate_ids,omitempty"`

	// Policy records the degenerate column policy that was applied.
	Policy topsis.DegeneratePolicy `json:"policy" validate:"required,oneof=reject propagate"`

	// CriteriaCount is the number of criteria ranked on.
	CriteriaCount int `json:"criteria_count" validate:"min=1"`
}

// Validate checks if the ranking result meets all operation contract requirements.
func (r *RankingResult) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRankingResult, err)
	}
	return nil
}

// Order returns the alternative IDs in rank order.
func (r *RankingResult) Order() []string {
	ids := make([]string, len(r.Ranked))
	for i, ra := range r.Ranked {
		ids[i] = ra.AlternativeID
	}
	return ids
}

// BuildRankingResult maps a core ranking onto the request's alternative IDs.
// The winner is the first alternative with a defined score; alternatives that
// tie it exactly follow it in the ranking and are reported in TiedWithIDs.
func BuildRankingResult(
	req *RankingRequest,
	ranking topsis.Ranking,
	policy topsis.DegeneratePolicy,
) (*RankingResult, error) {
	if len(ranking) != len(req.AlternativeIDs) {
		return nil, fmt.Errorf("%w: %d ranked alternatives for %d requested",
			ErrRankingMismatch, len(ranking), len(req.AlternativeIDs))
	}

	result := &RankingResult{
		Ranked:        make([]RankedAlternative, len(ranking)),
		Policy:        policy,
		CriteriaCount: len(req.Criteria),
	}

	var winner *topsis.Alternative
	for i, alt := range ranking {
		if alt.ID < 0 || alt.ID >= len(req.AlternativeIDs) {
			return nil, fmt.Errorf("%w: alternative index %d out of range",
				ErrRankingMismatch, alt.ID)
		}
		id := req.AlternativeIDs[alt.ID]

		ranked := RankedAlternative{
			Position:      i + 1,
			Index:         alt.ID,
			AlternativeID: id,
		}
		switch {
		case alt.IsDegenerate():
			ranked.Degenerate = true
			result.DegenerateIDs = append(result.DegenerateIDs, id)
		default:
			ranked.Score = alt.Score
			ranked.PositiveDistance = alt.PositiveDistance
			ranked.NegativeDistance = alt.NegativeDistance
			if winner == nil {
				winner = &ranking[i]
				result.WinnerID = id
			} else if alt.Score == winner.Score {
				result.TiedWithIDs = append(result.TiedWithIDs, id)
			}
		}
		result.Ranked[i] = ranked
	}

	return result, nil
}
