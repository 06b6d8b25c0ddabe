// Package worker exposes helpers to register workflows/activities with a Temporal worker.
package worker

import (
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-topsis/internal/configuration"
	"github.com/ahrav/go-topsis/internal/ranking"
	"github.com/ahrav/go-topsis/internal/workflow"
	"github.com/ahrav/go-topsis/pkg/activity"
	"github.com/ahrav/go-topsis/pkg/events"
	"github.com/ahrav/go-topsis/pkg/topsis"
)

// Registrar is the subset of a Temporal worker that registration needs.
type Registrar interface {
	RegisterWorkflow(w any)
	RegisterActivity(a any)
}

var _ Registrar = sdkworker.Worker(nil)

// RegisterAll registers the ranking workflow and activity with the worker.
// It must be called once during startup, before the worker starts. The
// workflow schedules the activity with activityCfg's timeouts and retry
// policy. A nil sink discards events.
func RegisterAll(
	w Registrar,
	activityCfg configuration.ActivityConfig,
	ranker *topsis.Ranker,
	sink events.EventSink,
) {
	if sink == nil {
		sink = events.NewNoOpEventSink()
	}
	base := activity.NewBaseActivities(sink)

	rankingActivities := ranking.NewActivities(base, ranker)

	w.RegisterWorkflow(workflow.NewWorkflows(activityCfg).RankingWorkflow)
	w.RegisterActivity(rankingActivities.RankAlternatives)
}
