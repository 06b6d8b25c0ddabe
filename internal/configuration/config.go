// Package configuration holds the ranking service configuration: how the
// TOPSIS ranker is built and how Temporal runs the ranking activity.
package configuration

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ahrav/go-topsis/pkg/topsis"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the complete ranking configuration.
type Config struct {
	// Ranking configures the TOPSIS ranker.
	Ranking RankingConfig `json:"ranking"`

	// Activity configures Temporal execution of the ranking activity.
	Activity ActivityConfig `json:"activity"`

	// Events configures where RankingProduced events are delivered.
	Events EventsConfig `json:"events"`
}

// RankingConfig controls how rankings are computed.
type RankingConfig struct {
	// DegeneratePolicy applies when a request does not choose one.
	DegeneratePolicy topsis.DegeneratePolicy `json:"degenerate_policy" validate:"required,oneof=reject propagate"`

	// Parallelism bounds the goroutines that process criterion columns.
	Parallelism int `json:"parallelism" validate:"min=1,max=256"`

	// LogLevel raises the ranker logger's threshold. "debug" traces every
	// stage when the supplied logger allows it.
	LogLevel string `json:"log_level" validate:"required,oneof=debug info warn error"`
}

// ActivityConfig controls timeouts and retries for the ranking activity.
// Ranking is deterministic, so retries only cover worker loss.
type ActivityConfig struct {
	StartToCloseTimeout time.Duration `json:"start_to_close_timeout" validate:"gt=0"`
	InitialInterval     time.Duration `json:"initial_interval" validate:"gt=0"`
	MaximumInterval     time.Duration `json:"maximum_interval" validate:"gtefield=InitialInterval"`
	BackoffCoefficient  float64       `json:"backoff_coefficient" validate:"gte=1"`
	MaximumAttempts     int32         `json:"maximum_attempts" validate:"min=1"`
}

// Event sink kinds.
const (
	SinkNoOp   = "noop"
	SinkMemory = "memory"
	SinkRedis  = "redis"
)

// EventsConfig selects and tunes the event sink.
type EventsConfig struct {
	// Sink is one of noop, memory or redis.
	Sink string `json:"sink" validate:"required,oneof=noop memory redis"`

	// RedisAddr is the host:port of the Redis server; required for the redis sink.
	RedisAddr string `json:"redis_addr" validate:"required_if=Sink redis"`

	// Stream is the Redis stream that receives events.
	Stream string `json:"stream" validate:"required_if=Sink redis"`

	// DedupeTTL bounds how long an idempotency key suppresses duplicates.
	// It is kept to the millisecond; zero keeps keys forever.
	DedupeTTL time.Duration `json:"dedupe_ttl" validate:"gte=0"`

	// StreamMaxLen caps the stream length approximately; zero keeps every entry.
	StreamMaxLen int64 `json:"stream_max_len" validate:"gte=0"`

	// RatePerSecond limits event delivery; zero disables the limit.
	RatePerSecond float64 `json:"rate_per_second" validate:"gte=0"`

	// Burst is the number of events allowed at once when limited.
	Burst int `json:"burst" validate:"min=1"`
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Level parses LogLevel into a zap level.
func (r RankingConfig) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(r.LogLevel)
}

// Options translates the ranking configuration into ranker options, using
// logger at the configured level.
func (r RankingConfig) Options(logger *zap.Logger) ([]topsis.Option, error) {
	level, err := r.Level()
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", r.LogLevel, err)
	}
	if logger != nil {
		logger = logger.WithOptions(zap.IncreaseLevel(level))
	}

	return []topsis.Option{
		topsis.WithDegeneratePolicy(r.DegeneratePolicy),
		topsis.WithParallelism(r.Parallelism),
		topsis.WithLogger(logger),
	}, nil
}
