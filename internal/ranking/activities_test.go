package ranking

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/ahrav/go-topsis/internal/domain"
	"github.com/ahrav/go-topsis/pkg/activity"
	"github.com/ahrav/go-topsis/pkg/events"
	"github.com/ahrav/go-topsis/pkg/topsis"
)

func TestRankAlternatives_ReferenceRequest(t *testing.T) {
	sink := events.NewMemoryEventSink()
	acts := newTestActivities(t, sink)

	result, err := acts.RankAlternatives(context.Background(), referenceRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"delta", "charlie", "alpha", "bravo"}, result.Order())
	assert.Equal(t, "delta", result.WinnerID)
	assert.Empty(t, result.TiedWithIDs)
	assert.Empty(t, result.DegenerateIDs)
	assert.Equal(t, topsis.DegenerateReject, result.Policy)
	assert.Equal(t, 3, result.CriteriaCount)

	winner := result.Ranked[0]
	assert.Equal(t, 1, winner.Position)
	assert.Equal(t, 3, winner.Index)
	assert.InDelta(t, 0.8311594494103931, winner.Score, 1e-9)
	assert.InDelta(t, 0.021552417006379682, winner.PositiveDistance, 1e-9)
	assert.InDelta(t, 0.10609711345959329, winner.NegativeDistance, 1e-9)

	emitted := sink.Events()
	require.Len(t, emitted, 1)
	env := emitted[0]
	assert.Equal(t, string(domain.EventTypeRankingProduced), env.Type)
	assert.Equal(t, domain.RankingProducedIdempotencyKey("ranking-test-key"), env.IdempotencyKey)
	assert.Equal(t, env.IdempotencyKey, env.ID)
	assert.Equal(t, activity.TestTenantID, env.TenantID)
	assert.Equal(t, "1.0.0", env.Version)

	var payload domain.RankingProducedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &payload))
	assert.Equal(t, result.Order(), payload.Order)
	assert.Equal(t, "delta", payload.WinnerID)
	assert.Equal(t, "reject", payload.Policy)
}

func TestRankAlternatives_RetryEmitsOnce(t *testing.T) {
	sink := events.NewMemoryEventSink()
	acts := newTestActivities(t, sink)

	first, err := acts.RankAlternatives(context.Background(), referenceRequest())
	require.NoError(t, err)
	second, err := acts.RankAlternatives(context.Background(), referenceRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Ranked, second.Ranked, "ranking is deterministic")
	assert.Len(t, sink.Events(), 1, "same client key deduplicates")
}

func TestRankAlternatives_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.RankingRequest)
		wantMsg string
	}{
		{
			name:    "missing idempotency key",
			mutate:  func(r *domain.RankingRequest) { r.ClientIdempotencyKey = "" },
			wantMsg: "invalid input",
		},
		{
			name:    "value count does not match shape",
			mutate:  func(r *domain.RankingRequest) { r.Values = r.Values[:11] },
			wantMsg: "invalid input",
		},
		{
			name:    "duplicate alternative IDs",
			mutate:  func(r *domain.RankingRequest) { r.AlternativeIDs[1] = "alpha" },
			wantMsg: "invalid input",
		},
		{
			name:    "unknown policy",
			mutate:  func(r *domain.RankingRequest) { r.Policy = "ignore" },
			wantMsg: "invalid input",
		},
		{
			name: "degenerate column under reject",
			mutate: func(r *domain.RankingRequest) {
				*r = degenerateRequest()
			},
			wantMsg: "ranking failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := events.NewMemoryEventSink()
			acts := newTestActivities(t, sink)

			req := referenceRequest()
			tt.mutate(&req)

			result, err := acts.RankAlternatives(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, result)

			var appErr *temporal.ApplicationError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, ErrorTypeRankAlternatives, appErr.Type())
			assert.True(t, appErr.NonRetryable(), "error should be non-retryable")
			assert.Contains(t, appErr.Error(), tt.wantMsg)
			assert.Empty(t, sink.Events(), "failed rankings emit nothing")
		})
	}
}

func TestRankAlternatives_DegenerateColumnNamed(t *testing.T) {
	acts := newTestActivities(t, nil)

	_, err := acts.RankAlternatives(context.Background(), degenerateRequest())
	require.ErrorIs(t, err, topsis.ErrDegenerateColumn)
	assert.Contains(t, err.Error(), "criterion 1")
}

func TestRankAlternatives_PolicyOverride(t *testing.T) {
	t.Run("request propagates over rejecting ranker", func(t *testing.T) {
		acts := newTestActivities(t, nil)
		req := degenerateRequest()
		req.Policy = topsis.DegeneratePropagate

		result, err := acts.RankAlternatives(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, topsis.DegeneratePropagate, result.Policy)
		assert.Equal(t, []string{"a", "b", "c"}, result.DegenerateIDs)
		assert.Empty(t, result.WinnerID)
		for _, r := range result.Ranked {
			assert.True(t, r.Degenerate)
			assert.Zero(t, r.Score)
		}
	})

	t.Run("request rejects over propagating ranker", func(t *testing.T) {
		acts := newTestActivities(t, nil, topsis.WithDegeneratePolicy(topsis.DegeneratePropagate))
		req := degenerateRequest()
		req.Policy = topsis.DegenerateReject

		_, err := acts.RankAlternatives(context.Background(), req)
		require.ErrorIs(t, err, topsis.ErrDegenerateColumn)
	})

	t.Run("empty policy uses ranker default", func(t *testing.T) {
		acts := newTestActivities(t, nil, topsis.WithDegeneratePolicy(topsis.DegeneratePropagate))

		result, err := acts.RankAlternatives(context.Background(), degenerateRequest())
		require.NoError(t, err)
		assert.Equal(t, topsis.DegeneratePropagate, result.Policy)
	})
}

func TestRankAlternatives_NilRanker(t *testing.T) {
	acts := NewActivities(activity.NewBaseActivities(nil), nil)

	_, err := acts.RankAlternatives(context.Background(), referenceRequest())
	require.ErrorIs(t, err, ErrNilRanker)

	var appErr *temporal.ApplicationError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.NonRetryable())
}

func TestRankAlternatives_SinkFailureDoesNotFailActivity(t *testing.T) {
	sink := &failingSink{}
	acts := newTestActivities(t, sink)

	result, err := acts.RankAlternatives(context.Background(), referenceRequest())
	require.NoError(t, err)
	assert.Equal(t, "delta", result.WinnerID)
	assert.Equal(t, 2, sink.attempts, "emission retries once")
}

func TestRankAlternatives_TemporalEnvironment(t *testing.T) {
	suite := &testsuite.WorkflowTestSuite{}
	env := suite.NewTestActivityEnvironment()

	sink := events.NewMemoryEventSink()
	acts := newTestActivities(t, sink)
	env.RegisterActivity(acts.RankAlternatives)

	val, err := env.ExecuteActivity(acts.RankAlternatives, referenceRequest())
	require.NoError(t, err)

	var result domain.RankingResult
	require.NoError(t, val.Get(&result))
	assert.Equal(t, []string{"delta", "charlie", "alpha", "bravo"}, result.Order())

	emitted := sink.Events()
	require.Len(t, emitted, 1)
	assert.Equal(t, defaultTenantID.String(), emitted[0].TenantID, "default tenant maps to fixed UUID")
	assert.NotEmpty(t, emitted[0].WorkflowID)
}
