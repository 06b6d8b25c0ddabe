package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMissingIdempotencyKey indicates an envelope that cannot be deduplicated.
var ErrMissingIdempotencyKey = errors.New("event envelope has no idempotency key")

// appendOnce claims the dedupe key and appends the event to the stream in one
// step, so a retry that races the original cannot append twice.
// Returns 1 when the event was appended and 0 for a duplicate.
//
// KEYS[1] = dedupe key
// KEYS[2] = stream key
// ARGV[1] = dedupe TTL in milliseconds (0 keeps the key forever)
// ARGV[2] = envelope JSON
// ARGV[3] = approximate stream length cap (0 disables trimming).
const appendOnce = `
	local ttl = tonumber(ARGV[1]) or 0
	local claimed
	if ttl > 0 then
		claimed = redis.call('SET', KEYS[1], '1', 'NX', 'PX', ttl)
	else
		claimed = redis.call('SET', KEYS[1], '1', 'NX')
	end
	if not claimed then
		return 0
	end
	local maxLen = tonumber(ARGV[3]) or 0
	if maxLen > 0 then
		redis.call('XADD', KEYS[2], 'MAXLEN', '~', maxLen, '*', 'envelope', ARGV[2])
	else
		redis.call('XADD', KEYS[2], '*', 'envelope', ARGV[2])
	end
	return 1
`

// RedisClient is the subset of the go-redis client the sink needs.
// Accepting an interface lets tests substitute an in-process fake.
type RedisClient interface {
	Eval(ctx context.Context, script string, keys []string, args ...any) *redis.Cmd
}

// RedisSinkOptions configures a RedisEventSink.
type RedisSinkOptions struct {
	// Stream is the Redis stream that receives envelopes.
	Stream string
	// DedupeTTL bounds how long an idempotency key suppresses duplicates.
	// It is rounded up to whole milliseconds; zero or less never expires.
	DedupeTTL time.Duration
	// MaxLen caps the stream length approximately; zero keeps every entry.
	MaxLen int64
}

// RedisEventSink appends envelopes to a Redis stream, deduplicated by
// idempotency key. It is safe for concurrent use.
type RedisEventSink struct {
	client RedisClient
	opts   RedisSinkOptions
}

// NewRedisEventSink creates a sink that writes through client.
func NewRedisEventSink(client RedisClient, opts RedisSinkOptions) *RedisEventSink {
	return &RedisEventSink{client: client, opts: opts}
}

// Append implements EventSink. A repeated idempotency key is a no-op.
func (s *RedisEventSink) Append(ctx context.Context, envelope Envelope) error {
	if envelope.IdempotencyKey == "" {
		return ErrMissingIdempotencyKey
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	_, err = s.client.Eval(ctx, appendOnce,
		[]string{s.dedupeKey(envelope.IdempotencyKey), s.opts.Stream},
		dedupeTTLMillis(s.opts.DedupeTTL), data, s.opts.MaxLen).Int64()
	if err != nil {
		return fmt.Errorf("append to stream %s: %w", s.opts.Stream, err)
	}
	return nil
}

// dedupeTTLMillis converts ttl for PX, rounding partial milliseconds up so a
// positive TTL never becomes zero. Non-positive TTLs map to 0.
func dedupeTTLMillis(ttl time.Duration) int64 {
	if ttl <= 0 {
		return 0
	}
	return int64((ttl + time.Millisecond - 1) / time.Millisecond)
}

func (s *RedisEventSink) dedupeKey(idempotencyKey string) string {
	return s.opts.Stream + ":idem:" + idempotencyKey
}
