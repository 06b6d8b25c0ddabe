// Package workflow implements the Temporal workflow that ranks alternatives.
//
// RankingWorkflow validates its request, then delegates the computation to
// the RankAlternatives activity. Workflows here must stay deterministic:
// no wall-clock time, randomness or I/O outside activities.
package workflow
