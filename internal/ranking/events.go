// Package ranking implements the Temporal activity that ranks alternatives
// with TOPSIS, together with the events it emits.
package ranking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahrav/go-topsis/internal/domain"
	"github.com/ahrav/go-topsis/pkg/activity"
	"github.com/ahrav/go-topsis/pkg/events"
)

// defaultTenantID stands in for the "default" tenant until workflows carry one.
var defaultTenantID = uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

// EventEmitter handles event emission for the ranking domain.
type EventEmitter struct {
	base activity.BaseActivities
}

// NewEventEmitter creates a new EventEmitter with the provided base activities.
func NewEventEmitter(base activity.BaseActivities) *EventEmitter {
	return &EventEmitter{base: base}
}

// EmitRankingProduced emits a RankingProduced event for result.
// Emission is best-effort; failures are logged and never returned.
func (e *EventEmitter) EmitRankingProduced(
	ctx context.Context,
	result *domain.RankingResult,
	wfCtx activity.WorkflowContext,
	clientIdemKey string,
) {
	tenantID, err := parseTenantID(wfCtx.TenantID)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to parse tenant ID for RankingProduced event",
			"tenant_id", wfCtx.TenantID,
			"error", err)
		return
	}

	domainEvent, err := domain.NewRankingProducedEvent(
		tenantID,
		wfCtx.WorkflowID,
		wfCtx.RunID,
		result,
		clientIdemKey,
	)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to create RankingProduced event",
			"winner_id", result.WinnerID,
			"error", err)
		return
	}

	e.base.EmitEventSafe(ctx, toEnvelope(domainEvent), fmt.Sprintf("RankingProduced[%s]", result.WinnerID))
}

// parseTenantID parses a tenant UUID, mapping "default" to defaultTenantID.
func parseTenantID(input string) (uuid.UUID, error) {
	if input == "default" {
		return defaultTenantID, nil
	}
	parsed, err := uuid.Parse(input)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid tenant UUID '%s': %w", input, err)
	}
	return parsed, nil
}

// toEnvelope maps a domain event onto the generic envelope. The idempotency
// key doubles as the event ID so retries produce the same ID.
func toEnvelope(domainEvent domain.EventEnvelope) events.Envelope {
	return events.Envelope{
		ID:             domainEvent.IdempotencyKey,
		Type:           string(domainEvent.EventType),
		Source:         domainEvent.Producer,
		Version:        fmt.Sprintf("%d.0.0", domainEvent.Version),
		Timestamp:      domainEvent.OccurredAt,
		IdempotencyKey: domainEvent.IdempotencyKey,
		TenantID:       domainEvent.TenantID.String(),
		WorkflowID:     domainEvent.WorkflowID,
		RunID:          domainEvent.RunID,
		Payload:        domainEvent.Payload,
	}
}
