package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event emitted by the system.
type EventType string

const (
	// EventTypeRankingProduced is emitted once per completed ranking.
	EventTypeRankingProduced EventType = "RankingProduced"
)

// rankingProducer identifies the component that emits ranking events.
const rankingProducer = "activity.rank_alternatives"

// EventEnvelope wraps domain events with the metadata projections need:
// workflow context, idempotency and a versioned payload.
type EventEnvelope struct {
	// IdempotencyKey ensures events are processed exactly once during retries.
	IdempotencyKey string `json:"idempotency_key" validate:"required"`

	// EventType identifies the specific type of event for routing and processing.
	EventType EventType `json:"event_type" validate:"required"`

	// Version enables event schema evolution. Starts at 1.
	Version int `json:"version" validate:"required,min=1"`

	// OccurredAt records when the event occurred.
	OccurredAt time.Time `json:"occurred_at" validate:"required"`

	// TenantID identifies the tenant for multi-tenant event filtering.
	TenantID uuid.UUID `json:"tenant_id" validate:"required"`

	// WorkflowID identifies the Temporal workflow that generated this event.
	WorkflowID string `json:"workflow_id" validate:"required"`

	// RunID identifies the specific workflow execution run.
	RunID string `json:"run_id" validate:"required"`

	// Payload contains the event-specific data as JSON.
	Payload json.RawMessage `json:"payload" validate:"required"`

	// Producer identifies the component that emitted this event.
	Producer string `json:"producer" validate:"required"`
}

// Validate checks if the event envelope meets all requirements.
func (e *EventEnvelope) Validate() error {
	return validate.Struct(e)
}

// RankingProducedPayload summarizes a completed ranking for projections.
type RankingProducedPayload struct {
	// Order lists alternative IDs best first.
	Order []string `json:"order" validate:"required,min=1"`

	// WinnerID is empty when every score is degenerate.
	WinnerID string `json:"winner_id,omitempty"`

	// TiedWithIDs lists alternatives tied with the winner.
	TiedWithIDs []string `json:"tied_with_ids,omitempty"`

	// DegenerateIDs lists alternatives with an undefined score.
	DegenerateIDs []string `json:"degenerate_ids,omitempty"`

	// CriteriaCount is the number of criteria ranked on.
	CriteriaCount int `json:"criteria_count" validate:"min=1"`

	// Policy is the degenerate column policy that was applied.
	Policy string `json:"policy" validate:"required"`
}

// Validate checks if the payload meets all requirements.
func (p *RankingProducedPayload) Validate() error {
	return validate.Struct(p)
}

// NewEventEnvelope creates an EventEnvelope with the common fields populated.
// The idempotency key is left for the caller, which knows the event's identity.
func NewEventEnvelope(
	eventType EventType,
	tenantID uuid.UUID,
	workflowID, runID string,
	payload json.RawMessage,
	producer string,
) EventEnvelope {
	return EventEnvelope{
		EventType:  eventType,
		Version:    1,
		TenantID:   tenantID,
		WorkflowID: workflowID,
		RunID:      runID,
		Payload:    payload,
		Producer:   producer,
		OccurredAt: time.Now(),
	}
}

// GenerateIdempotencyKey hashes the client key with an event-specific suffix
// so retries and replays of the same logical event produce the same key.
func GenerateIdempotencyKey(clientIdempotencyKey, eventSuffix string) string {
	sum := sha256.Sum256([]byte(clientIdempotencyKey + eventSuffix))
	return hex.EncodeToString(sum[:])
}

// RankingProducedIdempotencyKey returns H(client_idem_key || ":rank:1").
func RankingProducedIdempotencyKey(clientIdempotencyKey string) string {
	return GenerateIdempotencyKey(clientIdempotencyKey, ":rank:1")
}

// NewRankingProducedEvent creates a RankingProduced event envelope for result.
func NewRankingProducedEvent(
	tenantID uuid.UUID,
	workflowID, runID string,
	result *RankingResult,
	clientIdempotencyKey string,
) (EventEnvelope, error) {
	payload := RankingProducedPayload{
		Order:         result.Order(),
		WinnerID:      result.WinnerID,
		TiedWithIDs:   result.TiedWithIDs,
		DegenerateIDs: result.DegenerateIDs,
		CriteriaCount: result.CriteriaCount,
		Policy:        result.Policy.String(),
	}

	if err := payload.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid ranking produced payload: %w", err)
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	envelope := NewEventEnvelope(
		EventTypeRankingProduced,
		tenantID,
		workflowID,
		runID,
		payloadJSON,
		rankingProducer,
	)
	envelope.IdempotencyKey = RankingProducedIdempotencyKey(clientIdempotencyKey)

	if err := envelope.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid event envelope: %w", err)
	}

	return envelope, nil
}
