package uadetector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/uadetector/pkg/cache"
	"github.com/dmitrymomot/uadetector/pkg/logger"
	"github.com/dmitrymomot/uadetector/pkg/version"
)

// Config is the environment configuration of a Detector.
type Config struct {
	RulesDir          string        `env:"UADETECTOR_RULES_DIR"`                            // RulesDir holds the YAML corpus; empty uses the embedded one.
	VersionTruncation version.Level `env:"UADETECTOR_VERSION_TRUNCATION" envDefault:"none"` // none, major, minor, patch or build.
	SkipBotDetection  bool          `env:"UADETECTOR_SKIP_BOT_DETECTION" envDefault:"false"`
	CacheSize         int           `env:"UADETECTOR_CACHE_SIZE" envDefault:"10000"` // CacheSize of the in-memory LRU; 0 disables it.
	CacheMaxKeyLength int           `env:"UADETECTOR_CACHE_MAX_KEY_LENGTH" envDefault:"1024"`
	LogLevel          string        `env:"UADETECTOR_LOG_LEVEL" envDefault:"info"`
	LogFormat         string        `env:"UADETECTOR_LOG_FORMAT" envDefault:"json"`
	Redis             cache.RedisConfig
}

// LoadConfig reads Config from the environment. The named .env files are
// loaded first; without names a missing ./.env is ignored.
// Variables already set in the environment take precedence over file values.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrInvalidConfig, err)
	}
	if cfg.CacheSize < 0 {
		return Config{}, fmt.Errorf("%w: negative cache size %d", ErrInvalidConfig, cfg.CacheSize)
	}
	return cfg, nil
}

// Options converts cfg into detector options. When a Redis URL is configured
// it connects to Redis and uses it as the result cache instead of the LRU.
// The returned function releases the Redis connection and is never nil.
func (cfg Config) Options(ctx context.Context) ([]Option, func() error, error) {
	noop := func() error { return nil }

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, noop, errors.Join(ErrInvalidConfig, err)
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, noop, errors.Join(ErrInvalidConfig, err)
	}
	log := logger.New(logger.WithLevel(level), logger.WithFormat(format))

	opts := []Option{
		WithLogger(log),
		WithVersionTruncation(cfg.VersionTruncation),
		WithRulesDir(cfg.RulesDir),
	}
	if cfg.SkipBotDetection {
		opts = append(opts, WithSkipBotDetection())
	}

	if cfg.Redis.ConnectionURL != "" {
		client, err := cache.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, errors.Join(ErrConnectRedis, err)
		}
		opts = append(opts, WithCache(cache.NewRedis[Info](client,
			cache.WithRedisPrefix(cfg.Redis.KeyPrefix),
			cache.WithRedisTTL(cfg.Redis.TTL),
			cache.WithRedisMaxKeyLength(cfg.CacheMaxKeyLength),
			cache.WithRedisLogger(log),
		)))
		log.Info("redis result cache enabled", slog.Duration("ttl", cfg.Redis.TTL))
		return opts, client.Close, nil
	}

	if cfg.CacheSize > 0 {
		opts = append(opts, WithCache(cache.NewLRU(cfg.CacheSize, cache.WithMaxKeyLength[Info](cfg.CacheMaxKeyLength))))
	}
	return opts, noop, nil
}
