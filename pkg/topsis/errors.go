package topsis

import "errors"

// Every sentinel is prefixed with "topsis:" and returned wrapped with the
// offending position where one exists. Match with errors.Is.
var (
	// ErrShapeMismatch indicates that weights and directions differ in length.
	ErrShapeMismatch = errors.New("topsis: criteria weights and directions differ in length")

	// ErrInvalidShape indicates that the alternatives cannot form a non-empty
	// matrix with one column per criterion.
	ErrInvalidShape = errors.New("topsis: invalid alternatives shape")

	// ErrInvalidWeight indicates a negative, NaN or infinite criterion weight.
	ErrInvalidWeight = errors.New("topsis: invalid criterion weight")

	// ErrNonFiniteValue indicates a NaN or infinite alternative value.
	ErrNonFiniteValue = errors.New("topsis: non-finite alternative value")

	// ErrDegenerateColumn indicates a criterion column with zero Euclidean norm.
	ErrDegenerateColumn = errors.New("topsis: degenerate criterion column")

	// ErrNumericRange indicates a distance that left the floating-point range.
	ErrNumericRange = errors.New("topsis: distance outside floating-point range")

	// ErrInvalidOption indicates a Ranker option outside its accepted range.
	ErrInvalidOption = errors.New("topsis: invalid option")
)
