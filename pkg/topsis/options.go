package topsis

import (
	"fmt"

	"go.uber.org/zap"
)

// DegeneratePolicy selects how Rank treats a criterion column with zero norm.
type DegeneratePolicy string

const (
	// DegenerateReject fails the ranking with ErrDegenerateColumn.
	DegenerateReject DegeneratePolicy = "reject"

	// DegeneratePropagate carries NaN through normalization so every affected
	// alternative ends the ranking with a NaN score.
	DegeneratePropagate DegeneratePolicy = "propagate"
)

// String returns the string representation of the policy.
func (p DegeneratePolicy) String() string { return string(p) }

// IsValid reports whether p is a known policy.
func (p DegeneratePolicy) IsValid() bool {
	return p == DegenerateReject || p == DegeneratePropagate
}

type config struct {
	policy      DegeneratePolicy
	parallelism int
	logger      *zap.Logger
}

func defaultConfig() config {
	return config{
		policy:      DegenerateReject,
		parallelism: 1,
		logger:      zap.NewNop(),
	}
}

func (c config) validate() error {
	if !c.policy.IsValid() {
		return fmt.Errorf("%w: unknown degenerate policy %q", ErrInvalidOption, c.policy)
	}
	if c.parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be at least 1, got %d", ErrInvalidOption, c.parallelism)
	}
	return nil
}

// Option configures a Ranker.
type Option func(*config)

// WithDegeneratePolicy sets the zero-norm column policy. Default DegenerateReject.
func WithDegeneratePolicy(p DegeneratePolicy) Option {
	return func(c *config) { c.policy = p }
}

// WithParallelism bounds the number of goroutines that process criterion
// columns. One, the default, keeps the computation on the calling goroutine.
// Results are identical for every value.
func WithParallelism(n int) Option {
	return func(c *config) { c.parallelism = n }
}

// WithLogger sets the logger used for per-stage debug output.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}
