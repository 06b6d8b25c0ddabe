package domain

import "errors"

// ErrInvalidRankingRequest indicates that a ranking request violates its contract.
var ErrInvalidRankingRequest = errors.New("invalid ranking request")

// ErrInvalidRankingResult indicates that a ranking result violates its contract.
var ErrInvalidRankingResult = errors.New("invalid ranking result")

// ErrRankingMismatch indicates that a ranking does not describe the request's alternatives.
var ErrRankingMismatch = errors.New("ranking does not match request")
