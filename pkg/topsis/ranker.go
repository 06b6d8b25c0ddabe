package topsis

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Ranker runs the TOPSIS pipeline with a fixed configuration.
// It keeps no per-call state and is safe for concurrent use.
type Ranker struct {
	cfg config
}

// New creates a Ranker. It returns ErrInvalidOption when an option is out of range.
func New(opts ...Option) (*Ranker, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Ranker{cfg: cfg}, nil
}

// Rank is a convenience for New(opts...) followed by Ranker.Rank.
func Rank(weights []float64, benefit []bool, alternatives []float64, opts ...Option) (Ranking, error) {
	r, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return r.Rank(weights, benefit, alternatives)
}

// Policy returns the degenerate column policy the Ranker applies.
func (r *Ranker) Policy() DegeneratePolicy { return r.cfg.policy }

// WithPolicy returns a Ranker with r's configuration and the given policy.
func (r *Ranker) WithPolicy(policy DegeneratePolicy) (*Ranker, error) {
	cfg := r.cfg
	cfg.policy = policy
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Ranker{cfg: cfg}, nil
}

// columnResult is one criterion's output from normalization to squared deviations.
type columnResult struct {
	norm       float64
	degenerate bool
	ideal      ideal
	pos        []float64
	neg        []float64
}

// Rank orders the alternatives by relative closeness to the ideal solution.
//
// weights and benefit describe the C criteria; alternatives holds R*C values
// in column-major order. The returned ranking has exactly R entries and
// shares no memory with the inputs, which are never modified.
//
// Validation happens before any computation, in this order: ErrShapeMismatch,
// ErrInvalidShape, ErrInvalidWeight, ErrNonFiniteValue. A zero-norm column
// with a non-zero weight then yields ErrDegenerateColumn unless the policy is
// DegeneratePropagate; a zero-weight column is ignored whatever its values.
//
// Weights are divided by the largest weight before use, so their absolute
// magnitude never affects the result.
func (r *Ranker) Rank(weights []float64, benefit []bool, alternatives []float64) (Ranking, error) {
	if len(weights) != len(benefit) {
		return nil, fmt.Errorf("%w: %d weights, %d directions",
			ErrShapeMismatch, len(weights), len(benefit))
	}
	m, err := newMatrix(alternatives, len(weights))
	if err != nil {
		return nil, err
	}
	if err := validateWeights(weights); err != nil {
		return nil, err
	}
	if err := m.requireFinite(); err != nil {
		return nil, err
	}
	relative := relativeWeights(weights)

	results := make([]columnResult, m.cols)
	r.forEachColumn(m.cols, func(j int) {
		col := m.column(j)
		res := &results[j]
		res.norm = normalizeColumn(col, relative[j])
		res.degenerate = res.norm == 0 && relative[j] != 0
		res.ideal = idealFor(col, benefit[j])
		res.pos = make([]float64, m.rows)
		res.neg = make([]float64, m.rows)
		squaredDeviations(col, res.ideal, res.pos, res.neg)
	})

	degenerate := degenerateColumns(results)
	if len(degenerate) > 0 {
		if r.cfg.policy == DegenerateReject {
			return nil, fmt.Errorf("criterion %d: %w", degenerate[0], ErrDegenerateColumn)
		}
		r.cfg.logger.Warn("degenerate criterion columns propagate NaN scores",
			zap.Ints("criteria", degenerate))
	}
	r.debug("criteria normalized", func() []zap.Field {
		norms := make([]float64, len(results))
		for j, res := range results {
			norms[j] = res.norm
		}
		return []zap.Field{
			zap.Int("alternatives", m.rows),
			zap.Int("criteria", m.cols),
			zap.Float64s("norms", norms),
		}
	})
	r.debug("ideal solutions derived", func() []zap.Field {
		pis, nis := make([]float64, len(results)), make([]float64, len(results))
		for j, res := range results {
			pis[j], nis[j] = res.ideal.positive, res.ideal.negative
		}
		return []zap.Field{zap.Float64s("positive", pis), zap.Float64s("negative", nis)}
	})

	pos, neg := make([][]float64, m.cols), make([][]float64, m.cols)
	for j, res := range results {
		pos[j], neg[j] = res.pos, res.neg
	}
	dPlus, dMinus := euclidean(pos, m.rows), euclidean(neg, m.rows)
	if err := requireFiniteDistances(dPlus, dMinus, len(degenerate) > 0); err != nil {
		return nil, err
	}
	r.debug("distances computed", func() []zap.Field {
		return []zap.Field{zap.Float64s("d_plus", dPlus), zap.Float64s("d_minus", dMinus)}
	})

	ranking := newRanking(dPlus, dMinus)
	r.debug("alternatives ranked", func() []zap.Field {
		return []zap.Field{zap.Ints("order", ranking.IDs()), zap.Float64s("scores", ranking.Scores())}
	})
	return ranking, nil
}

// forEachColumn calls fn once per criterion index. With parallelism above one
// the calls run on a bounded errgroup; fn must only touch its own column.
func (r *Ranker) forEachColumn(cols int, fn func(j int)) {
	if r.cfg.parallelism <= 1 || cols == 1 {
		for j := range cols {
			fn(j)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(r.cfg.parallelism)
	for j := range cols {
		g.Go(func() error {
			fn(j)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
}

// debug writes a debug entry, building its fields only when the level is enabled.
func (r *Ranker) debug(msg string, fields func() []zap.Field) {
	if ce := r.cfg.logger.Check(zap.DebugLevel, msg); ce != nil {
		ce.Write(fields()...)
	}
}

// degenerateColumns returns the indices of weighted zero-norm columns, ascending.
func degenerateColumns(results []columnResult) []int {
	var cols []int
	for j, res := range results {
		if res.degenerate {
			cols = append(cols, j)
		}
	}
	return cols
}
