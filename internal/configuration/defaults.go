package configuration

import (
	"time"

	"github.com/ahrav/go-topsis/pkg/topsis"
)

// Ranking constants.
const (
	DefaultParallelism      = 1
	DefaultLogLevel         = "info"
	DefaultDegeneratePolicy = topsis.DegenerateReject
)

// Activity constants.
const (
	DefaultStartToCloseTimeout = 30 * time.Second
	DefaultInitialInterval     = time.Second
	DefaultMaximumInterval     = time.Minute
	DefaultBackoffCoefficient  = 2.0
	DefaultMaximumAttempts     = 3
)

// Events constants.
const (
	DefaultEventSink    = SinkNoOp
	DefaultEventStream  = "topsis:ranking-events"
	DefaultDedupeTTL    = 24 * time.Hour
	DefaultStreamMaxLen = 100_000
	DefaultEventBurst   = 10
)

// DefaultConfig returns a configuration that ranks on the calling goroutine,
// rejects degenerate columns, retries the activity three times and
// discards events.
func DefaultConfig() *Config {
	return &Config{
		Ranking: RankingConfig{
			DegeneratePolicy: DefaultDegeneratePolicy,
			Parallelism:      DefaultParallelism,
			LogLevel:         DefaultLogLevel,
		},
		Activity: ActivityConfig{
			StartToCloseTimeout: DefaultStartToCloseTimeout,
			InitialInterval:     DefaultInitialInterval,
			MaximumInterval:     DefaultMaximumInterval,
			BackoffCoefficient:  DefaultBackoffCoefficient,
			MaximumAttempts:     DefaultMaximumAttempts,
		},
		Events: EventsConfig{
			Sink:         DefaultEventSink,
			Stream:       DefaultEventStream,
			DedupeTTL:    DefaultDedupeTTL,
			StreamMaxLen: DefaultStreamMaxLen,
			Burst:        DefaultEventBurst,
		},
	}
}
