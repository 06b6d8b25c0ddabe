// Package events provides the generic event infrastructure for domain event emission.
// It defines the Envelope type for wrapping domain events with consistent metadata
// and the EventSink interface for event storage or transmission.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Envelope wraps a domain event with routing, idempotency and workflow metadata.
type Envelope struct {
	// ID uniquely identifies this event instance.
	ID string `json:"id"`

	// Type identifies the event for routing, e.g. "RankingProduced".
	Type string `json:"type"`

	// Source identifies the component that emitted this event.
	Source string `json:"source"`

	// Version follows semantic versioning of the payload schema.
	Version string `json:"version"`

	// Timestamp records when the event was emitted.
	Timestamp time.Time `json:"timestamp"`

	// IdempotencyKey deduplicates the event across activity retries.
	IdempotencyKey string `json:"idempotency_key"`

	// TenantID identifies the tenant for multi-tenant filtering.
	TenantID string `json:"tenant_id"`

	// WorkflowID identifies the Temporal workflow that triggered this event.
	WorkflowID string `json:"workflow_id"`

	// RunID identifies the specific workflow execution run.
	RunID string `json:"run_id"`

	// Payload contains the domain-specific event data as JSON.
	Payload json.RawMessage `json:"payload"`
}

// EventSink receives emitted events. Implementations might be a database
// outbox, a message queue, or a log.
//
// Append should treat a repeated idempotency key as a no-op and return
// quickly. Callers never fail their primary operation on an Append error.
type EventSink interface {
	Append(ctx context.Context, envelope Envelope) error
}

// NoOpEventSink discards every event.
type NoOpEventSink struct{}

// Append implements EventSink.Append with no-op behavior.
func (n *NoOpEventSink) Append(_ context.Context, _ Envelope) error {
	return nil
}

// NewNoOpEventSink creates a new no-op event sink.
func NewNoOpEventSink() EventSink {
	return &NoOpEventSink{}
}

// MemoryEventSink keeps events in memory, deduplicated by idempotency key.
// It is safe for concurrent use.
type MemoryEventSink struct {
	mu     sync.Mutex
	seen   map[string]struct{}
	events []Envelope
}

// NewMemoryEventSink creates an empty in-memory sink.
func NewMemoryEventSink() *MemoryEventSink {
	return &MemoryEventSink{seen: make(map[string]struct{})}
}

// Append stores envelope unless an event with the same idempotency key was
// already stored.
func (m *MemoryEventSink) Append(ctx context.Context, envelope Envelope) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.seen[envelope.IdempotencyKey]; dup {
		return nil
	}
	m.seen[envelope.IdempotencyKey] = struct{}{}
	m.events = append(m.events, envelope)
	return nil
}

// Events returns a copy of the stored events in append order.
func (m *MemoryEventSink) Events() []Envelope {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Envelope, len(m.events))
	copy(out, m.events)
	return out
}
