package events

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedSink bounds the rate at which events reach the wrapped sink.
// Append blocks until a token is available or ctx is done.
type RateLimitedSink struct {
	next    EventSink
	limiter *rate.Limiter
}

// NewRateLimitedSink wraps next with limiter.
func NewRateLimitedSink(next EventSink, limiter *rate.Limiter) *RateLimitedSink {
	return &RateLimitedSink{next: next, limiter: limiter}
}

// Append implements EventSink.
func (s *RateLimitedSink) Append(ctx context.Context, envelope Envelope) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("event rate limit: %w", err)
	}
	return s.next.Append(ctx, envelope)
}
