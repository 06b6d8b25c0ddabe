// Package worker provides initialization and setup utilities for Temporal workers.
// This package contains initialization logic that should be executed during
// worker startup, keeping activity packages focused on pure activity logic.
package worker

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ahrav/go-topsis/internal/configuration"
	"github.com/ahrav/go-topsis/pkg/events"
	"github.com/ahrav/go-topsis/pkg/topsis"
)

// InitializeRanker validates cfg and builds the ranker the activities share.
// A nil cfg uses configuration.DefaultConfig; a nil logger discards output.
// Returns the ranker for dependency injection rather than setting global state.
func InitializeRanker(cfg *configuration.Config, logger *zap.Logger) (*topsis.Ranker, error) {
	if cfg == nil {
		cfg = configuration.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialize ranker: %w", err)
	}

	opts, err := cfg.Ranking.Options(logger.Named("topsis"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ranker: %w", err)
	}

	ranker, err := topsis.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ranker: %w", err)
	}

	logger.Info("ranker initialized",
		zap.Stringer("degenerate_policy", ranker.Policy()),
		zap.Int("parallelism", cfg.Ranking.Parallelism))
	return ranker, nil
}

// InitializeEventSink builds the configured event sink, rate limited when
// RatePerSecond is set. The returned close function releases any connection
// the sink holds and is safe to call when there is none.
func InitializeEventSink(cfg configuration.EventsConfig) (events.EventSink, func() error, error) {
	noClose := func() error { return nil }

	var (
		sink    events.EventSink
		closeFn = noClose
	)
	switch cfg.Sink {
	case configuration.SinkNoOp:
		sink = events.NewNoOpEventSink()
	case configuration.SinkMemory:
		sink = events.NewMemoryEventSink()
	case configuration.SinkRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		sink = events.NewRedisEventSink(client, events.RedisSinkOptions{
			Stream:    cfg.Stream,
			DedupeTTL: cfg.DedupeTTL,
			MaxLen:    cfg.StreamMaxLen,
		})
		closeFn = client.Close
	default:
		return nil, noClose, fmt.Errorf("failed to initialize event sink: unknown sink %q", cfg.Sink)
	}

	if cfg.RatePerSecond > 0 {
		sink = events.NewRateLimitedSink(sink, rate.NewLimiter(rate.Limit(cfg.RatePerSecond), max(cfg.Burst, 1)))
	}
	return sink, closeFn, nil
}
