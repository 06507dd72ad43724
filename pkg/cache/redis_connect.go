package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisConfig describes how to reach the Redis server backing a shared result cache.
type RedisConfig struct {
	ConnectionURL  string        `env:"UADETECTOR_REDIS_URL"`                                 // ConnectionURL in the format "redis://:password@localhost:6379/0". Empty disables Redis.
	TTL            time.Duration `env:"UADETECTOR_REDIS_TTL" envDefault:"24h"`                // TTL of cached detection results.
	KeyPrefix      string        `env:"UADETECTOR_REDIS_KEY_PREFIX" envDefault:"uadetector:"` // KeyPrefix is prepended to every hashed key.
	RetryAttempts  int           `env:"UADETECTOR_REDIS_RETRY_ATTEMPTS" envDefault:"3"`       // RetryAttempts is the number of connection attempts.
	RetryInterval  time.Duration `env:"UADETECTOR_REDIS_RETRY_INTERVAL" envDefault:"5s"`      // RetryInterval is the pause between attempts.
	ConnectTimeout time.Duration `env:"UADETECTOR_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`    // ConnectTimeout bounds the whole connection procedure.
}

// ConnectRedis establishes a connection to a Redis server using the provided configuration.
// It pings the server up to RetryAttempts times, sleeping RetryInterval between attempts.
//
// Returns ErrEmptyConnectionURL when no URL is configured,
// ErrFailedToParseRedisConnString if the URL is invalid and
// ErrRedisNotReady if all connection attempts fail.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	attempts := max(cfg.RetryAttempts, 1)
	for range attempts {
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrRedisNotReady
}

// Healthcheck returns a probe that pings the Redis server.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if _, err := client.Ping(ctx).Result(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
