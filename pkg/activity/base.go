// Package activity provides common infrastructure for Temporal activity implementations:
// workflow context extraction, context-safe logging and best-effort event emission.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"

	"github.com/ahrav/go-topsis/pkg/events"
)

// Fallback identifiers used when no Temporal activity context is present.
const (
	TestWorkflowID = "550e8400-e29b-41d4-a716-446655440000"
	TestTenantID   = "550e8400-e29b-41d4-a716-446655440000"
	TestActivityID = "test-activity"
)

// Event emission retry settings.
const (
	emitAttempts   = 2
	emitRetryDelay = 200 * time.Millisecond
)

// WorkflowContext contains metadata extracted from the Temporal activity context.
type WorkflowContext struct {
	WorkflowID string
	RunID      string
	TenantID   string
	ActivityID string
}

// BaseActivities provides common infrastructure for all activity types.
// The zero value is usable and emits no events.
type BaseActivities struct {
	eventSink events.EventSink
}

// NewBaseActivities creates a BaseActivities that emits to sink.
// A nil sink disables event emission.
func NewBaseActivities(sink events.EventSink) BaseActivities {
	return BaseActivities{eventSink: sink}
}

// GetWorkflowContext extracts workflow metadata from an activity context.
// Outside an activity, where activity.GetInfo panics, it returns the fixed
// test identifiers with a random run ID.
func (b *BaseActivities) GetWorkflowContext(ctx context.Context) (wfCtx WorkflowContext) {
	defer func() {
		if recover() != nil {
			wfCtx = WorkflowContext{
				WorkflowID: TestWorkflowID,
				RunID:      "test-run-" + uuid.New().String()[:8],
				TenantID:   TestTenantID,
				ActivityID: TestActivityID,
			}
		}
	}()

	info := activity.GetInfo(ctx)
	return WorkflowContext{
		WorkflowID: info.WorkflowExecution.ID,
		RunID:      info.WorkflowExecution.RunID,
		ActivityID: info.ActivityID,
		// TODO: read the tenant from workflow memo once requests carry one.
		TenantID: "default",
	}
}

// EmitEventSafe appends envelope to the sink, retrying once after a short
// delay. Failures are logged and never returned: events are for observability,
// not correctness.
func (b *BaseActivities) EmitEventSafe(ctx context.Context, envelope events.Envelope, description string) {
	if b.eventSink == nil {
		return
	}

	var lastErr error
	for attempt := range emitAttempts {
		if attempt > 0 {
			select {
			case <-time.After(emitRetryDelay):
			case <-ctx.Done():
				SafeLogError(ctx, "Event emission cancelled: "+description,
					"event_type", envelope.Type)
				return
			}
		}

		if lastErr = b.eventSink.Append(ctx, envelope); lastErr == nil {
			SafeLog(ctx, "Event emitted: "+description,
				"event_type", envelope.Type,
				"idempotency_key", envelope.IdempotencyKey)
			return
		}
	}

	SafeLogError(ctx, fmt.Sprintf("Failed to emit %s after %d attempts", description, emitAttempts),
		"event_type", envelope.Type,
		"error", lastErr)
}

// SafeLog logs at INFO through the activity logger. Outside an activity
// context the call is dropped.
func SafeLog(ctx context.Context, msg string, keyvals ...any) {
	defer func() { _ = recover() }()
	activity.GetLogger(ctx).Info(msg, keyvals...)
}

// SafeLogError logs at ERROR through the activity logger. Outside an activity
// context the call is dropped.
func SafeLogError(ctx context.Context, msg string, keyvals ...any) {
	defer func() { _ = recover() }()
	activity.GetLogger(ctx).Error(msg, keyvals...)
}
