// Package topsis ranks alternatives with the Technique for Order Preference
// by Similarity to Ideal Solution.
//
// Alternatives are scored on C criteria and supplied as a flat, column-major
// slice: every alternative's value on criterion 0, then every value on
// criterion 1, and so on. Each criterion carries a non-negative weight and a
// direction (benefit when higher is better, cost when lower is better).
//
// Pipeline:
//   - Columns are rescaled to unit Euclidean norm and multiplied by their weight
//   - Per criterion, the positive and negative ideal values are the best and
//     worst weighted values across all alternatives
//   - Each alternative's Euclidean distance to both ideal profiles (D+, D-)
//   - Relative closeness D- / (D+ + D-), sorted descending
//
// Ordering is a strict total order: higher scores first, exact ties broken by
// ascending alternative ID, NaN scores last. An alternative whose distances to
// both ideals are zero scores exactly 0.5.
//
// Only the ratio between weights matters; a zero weight suppresses its
// criterion exactly as if the column were removed.
//
// A weighted criterion column whose values are all zero has no Euclidean
// norm. By default Rank rejects it with ErrDegenerateColumn; with
// DegeneratePropagate the affected scores become NaN and are reported by
// Ranking.Degenerate.
package topsis
