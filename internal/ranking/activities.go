package ranking

import (
	"context"
	"errors"
	"time"

	"go.temporal.io/sdk/temporal"

	"github.com/ahrav/go-topsis/internal/domain"
	"github.com/ahrav/go-topsis/pkg/activity"
	"github.com/ahrav/go-topsis/pkg/topsis"
)

// ErrorTypeRankAlternatives is the application error type for every failure
// of the RankAlternatives activity.
const ErrorTypeRankAlternatives = "RankAlternatives"

// ErrNilRanker indicates the activities were built without a ranker.
var ErrNilRanker = errors.New("ranking activities require a ranker")

// Activities handles ranking-specific Temporal activities.
type Activities struct {
	activity.BaseActivities
	ranker *topsis.Ranker
	events *EventEmitter
}

// NewActivities creates ranking activities around ranker. The ranker's
// policy applies to requests that do not choose one.
func NewActivities(base activity.BaseActivities, ranker *topsis.Ranker) *Activities {
	return &Activities{
		BaseActivities: base,
		ranker:         ranker,
		events:         NewEventEmitter(base),
	}
}

// RankAlternatives ranks the request's alternatives by closeness to the ideal
// solution.
//
// The operation:
// 1. Validates the request contract
// 2. Runs the TOPSIS ranker, with the request's degenerate policy if set
// 3. Maps row indexes back to alternative IDs
// 4. Emits a RankingProduced event, best-effort
//
// Every failure is non-retryable: ranking is deterministic, so a retry with
// the same input fails the same way.
func (a *Activities) RankAlternatives(
	ctx context.Context,
	req domain.RankingRequest,
) (*domain.RankingResult, error) {
	if a.ranker == nil {
		return nil, nonRetryable(ErrNilRanker, "ranker not configured")
	}
	if err := req.Validate(); err != nil {
		return nil, nonRetryable(err, "invalid input")
	}

	start := time.Now()
	wfCtx := a.GetWorkflowContext(ctx)
	activity.SafeLog(ctx, "Starting RankAlternatives activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"alternatives", len(req.AlternativeIDs),
		"criteria", len(req.Criteria))

	ranker, err := a.rankerFor(req.Policy)
	if err != nil {
		return nil, nonRetryable(err, "invalid ranking policy")
	}

	ranking, err := ranker.Rank(req.Weights(), req.Directions(), req.Values)
	if err != nil {
		return nil, nonRetryable(err, "ranking failed")
	}

	result, err := domain.BuildRankingResult(&req, ranking, ranker.Policy())
	if err != nil {
		return nil, nonRetryable(err, "ranking failed")
	}
	if err := result.Validate(); err != nil {
		return nil, nonRetryable(err, "invalid output")
	}

	a.events.EmitRankingProduced(ctx, result, wfCtx, req.ClientIdempotencyKey)

	activity.SafeLog(ctx, "RankAlternatives completed",
		"winner_id", result.WinnerID,
		"tied", len(result.TiedWithIDs),
		"degenerate", len(result.DegenerateIDs),
		"processing_time_ms", time.Since(start).Milliseconds())

	return result, nil
}

// rankerFor returns the configured ranker, or a copy that applies policy
// when the request overrides it.
func (a *Activities) rankerFor(policy topsis.DegeneratePolicy) (*topsis.Ranker, error) {
	if policy == "" || policy == a.ranker.Policy() {
		return a.ranker, nil
	}
	return a.ranker.WithPolicy(policy)
}

func nonRetryable(cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, ErrorTypeRankAlternatives, cause)
}
