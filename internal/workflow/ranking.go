package workflow

import (
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-topsis/internal/configuration"
	"github.com/ahrav/go-topsis/internal/domain"
)

// Registered names of the ranking workflow and activity.
const (
	RankingWorkflowName      = "RankingWorkflow"
	RankAlternativesActivity = "RankAlternatives"
)

// ErrorTypeValidation tags requests rejected before any activity runs.
const ErrorTypeValidation = "Validation"

// Workflows holds the ranking workflow together with the activity settings
// it schedules with. Every worker must register it with the same settings.
type Workflows struct {
	activity configuration.ActivityConfig
}

// NewWorkflows creates ranking workflows that run activities under cfg.
func NewWorkflows(cfg configuration.ActivityConfig) *Workflows {
	return &Workflows{activity: cfg}
}

// RankingWorkflow ranks the request's alternatives by closeness to the ideal
// solution and returns the ranked result.
func (w *Workflows) RankingWorkflow(
	ctx workflow.Context,
	req domain.RankingRequest,
) (*domain.RankingResult, error) {
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "ranking.v", workflow.DefaultVersion, currentVersion)

	// Fail fast; the activity would reject the request anyway.
	if err := req.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid ranking request",
			ErrorTypeValidation,
			err,
		)
	}

	ctx = workflow.WithActivityOptions(ctx, activityOptions(w.activity))

	var result domain.RankingResult
	if err := workflow.ExecuteActivity(ctx, RankAlternativesActivity, req).Get(ctx, &result); err != nil {
		return nil, err
	}

	workflow.GetLogger(ctx).Info("Ranking completed",
		"winner_id", result.WinnerID,
		"alternatives", len(result.Ranked))

	return &result, nil
}

// activityOptions builds the timeouts and retry policy for ranking activities.
func activityOptions(cfg configuration.ActivityConfig) workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: cfg.StartToCloseTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    cfg.InitialInterval,
			BackoffCoefficient: cfg.BackoffCoefficient,
			MaximumInterval:    cfg.MaximumInterval,
			MaximumAttempts:    cfg.MaximumAttempts,
		},
	}
}
