package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-topsis/internal/domain"
	"github.com/ahrav/go-topsis/pkg/activity"
	"github.com/ahrav/go-topsis/pkg/events"
	"github.com/ahrav/go-topsis/pkg/topsis"
)

// errSinkUnavailable is returned by failingSink on every append.
var errSinkUnavailable = errors.New("sink unavailable")

// failingSink rejects every event and counts the attempts.
type failingSink struct {
	attempts int
}

func (f *failingSink) Append(context.Context, events.Envelope) error {
	f.attempts++
	return errSinkUnavailable
}

// referenceRequest ranks four laptops on three benefit criteria.
// Expected order: delta, charlie, alpha, bravo.
func referenceRequest() domain.RankingRequest {
	return domain.RankingRequest{
		Criteria: []domain.Criterion{
			{Name: "performance", Weight: 0.64339, Benefit: true},
			{Name: "battery", Weight: 0.28284, Benefit: true},
			{Name: "ports", Weight: 0.07377, Benefit: true},
		},
		AlternativeIDs: []string{"alpha", "bravo", "charlie", "delta"},
		Values: []float64{
			80, 70, 91, 90,
			80, 71, 90, 78,
			0, 1, 0, 4,
		},
		ClientIdempotencyKey: "ranking-test-key",
	}
}

// degenerateRequest has an all-zero second criterion.
func degenerateRequest() domain.RankingRequest {
	return domain.RankingRequest{
		Criteria: []domain.Criterion{
			{Name: "price", Weight: 0.5, Benefit: false},
			{Name: "rebate", Weight: 0.5, Benefit: true},
		},
		AlternativeIDs:       []string{"a", "b", "c"},
		Values:               []float64{250, 300, 180, 0, 0, 0},
		ClientIdempotencyKey: "degenerate-key",
	}
}

// newTestActivities builds activities over a default ranker and the given sink.
func newTestActivities(t *testing.T, sink events.EventSink, opts ...topsis.Option) *Activities {
	t.Helper()
	ranker, err := topsis.New(opts...)
	require.NoError(t, err)
	return NewActivities(activity.NewBaseActivities(sink), ranker)
}
