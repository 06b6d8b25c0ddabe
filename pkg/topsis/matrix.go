package topsis

import (
	"fmt"
	"math"
)

// matrix is a dense alternatives-by-criteria table stored column-major.
// It owns its backing slice; the caller's input is copied once so the
// pipeline can rescale columns in place.
type matrix struct {
	rows int
	cols int
	data []float64
}

// newMatrix interprets flat as cols contiguous columns of equal length.
func newMatrix(flat []float64, cols int) (*matrix, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("%w: no criteria", ErrInvalidShape)
	}
	if len(flat) == 0 {
		return nil, fmt.Errorf("%w: no alternatives", ErrInvalidShape)
	}
	if len(flat)%cols != 0 {
		return nil, fmt.Errorf("%w: %d values do not divide into %d criteria",
			ErrInvalidShape, len(flat), cols)
	}

	data := make([]float64, len(flat))
	copy(data, flat)
	return &matrix{rows: len(flat) / cols, cols: cols, data: data}, nil
}

// requireFinite rejects NaN and infinite values, naming the first offender.
func (m *matrix) requireFinite() error {
	for i, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: alternative %d, criterion %d is %v",
				ErrNonFiniteValue, i%m.rows, i/m.rows, v)
		}
	}
	return nil
}

// column returns criterion j's values for every alternative. The slice
// aliases the matrix and is capped so appends cannot spill into column j+1.
func (m *matrix) column(j int) []float64 {
	lo, hi := j*m.rows, (j+1)*m.rows
	return m.data[lo:hi:hi]
}
