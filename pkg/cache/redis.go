package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of the go-redis API the Redis cache needs.
// *redis.Client, *redis.ClusterClient and redis.UniversalClient satisfy it.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisOption configures a Redis cache.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix       string
	ttl          time.Duration
	timeout      time.Duration
	maxKeyLength int
	logger       *slog.Logger
}

// WithRedisPrefix sets the namespace prepended to stored keys.
func WithRedisPrefix(prefix string) RedisOption {
	return func(o *redisOptions) { o.prefix = prefix }
}

// WithRedisTTL sets the expiration of stored entries. Zero keeps them forever.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(o *redisOptions) { o.ttl = ttl }
}

// WithRedisTimeout bounds every round trip to the server.
func WithRedisTimeout(d time.Duration) RedisOption {
	return func(o *redisOptions) { o.timeout = d }
}

// WithRedisMaxKeyLength sets the longest raw key Set accepts.
func WithRedisMaxKeyLength(n int) RedisOption {
	return func(o *redisOptions) { o.maxKeyLength = n }
}

// WithRedisLogger sets the logger used for transport and codec failures.
func WithRedisLogger(l *slog.Logger) RedisOption {
	return func(o *redisOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Redis is a Cache shared between processes. Values are stored as JSON under
// prefix + sha256(key), so stored key size does not depend on the User-Agent length.
//
// Transport errors are logged and reported as misses or rejected writes.
type Redis[V any] struct {
	client RedisClient
	opts   redisOptions
}

var _ Cache[int] = (*Redis[int])(nil)

// NewRedis wraps client into a Cache.
func NewRedis[V any](client RedisClient, opts ...RedisOption) *Redis[V] {
	o := redisOptions{
		prefix:       "uadetector:",
		ttl:          24 * time.Hour,
		timeout:      100 * time.Millisecond,
		maxKeyLength: DefaultMaxKeyLength,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Redis[V]{client: client, opts: o}
}

// TryGet loads and decodes the value stored for key.
func (r *Redis[V]) TryGet(key string) (V, bool) {
	var zero V
	if !keyAllowed(key, r.opts.maxKeyLength) {
		return zero, false
	}

	ctx, cancel := r.context()
	defer cancel()

	data, err := r.client.Get(ctx, r.storageKey(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.opts.logger.Debug("redis cache get failed", slog.String("error", err.Error()))
		}
		return zero, false
	}

	var value V
	if err := json.Unmarshal(data, &value); err != nil {
		r.opts.logger.Debug("redis cache decode failed", slog.String("error", err.Error()))
		return zero, false
	}
	return value, true
}

// Set encodes and stores value. Oversized keys and failed writes return false.
func (r *Redis[V]) Set(key string, value V) bool {
	if !keyAllowed(key, r.opts.maxKeyLength) {
		return false
	}

	data, err := json.Marshal(value)
	if err != nil {
		r.opts.logger.Debug("redis cache encode failed", slog.String("error", err.Error()))
		return false
	}

	ctx, cancel := r.context()
	defer cancel()

	if err := r.client.Set(ctx, r.storageKey(key), data, r.opts.ttl).Err(); err != nil {
		r.opts.logger.Debug("redis cache set failed", slog.String("error", err.Error()))
		return false
	}
	return true
}

func (r *Redis[V]) storageKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return r.opts.prefix + hex.EncodeToString(sum[:])
}

func (r *Redis[V]) context() (context.Context, context.CancelFunc) {
	if r.opts.timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), r.opts.timeout)
}
