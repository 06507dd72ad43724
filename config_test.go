package uadetector_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uadetector"
	"github.com/dmitrymomot/uadetector/pkg/version"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := uadetector.LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.RulesDir)
	assert.Equal(t, version.None, cfg.VersionTruncation)
	assert.False(t, cfg.SkipBotDetection)
	assert.Equal(t, 10000, cfg.CacheSize)
	assert.Equal(t, 1024, cfg.CacheMaxKeyLength)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.Redis.ConnectionURL)
	assert.Equal(t, 24*time.Hour, cfg.Redis.TTL)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("UADETECTOR_VERSION_TRUNCATION", "major")
	t.Setenv("UADETECTOR_SKIP_BOT_DETECTION", "true")
	t.Setenv("UADETECTOR_CACHE_SIZE", "0")
	t.Setenv("UADETECTOR_REDIS_TTL", "1h")

	cfg, err := uadetector.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, version.Major, cfg.VersionTruncation)
	assert.True(t, cfg.SkipBotDetection)
	assert.Zero(t, cfg.CacheSize)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("UADETECTOR_LOG_FORMAT=text\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("UADETECTOR_LOG_FORMAT") })

	cfg, err := uadetector.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)

	_, err = uadetector.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, uadetector.ErrInvalidConfig)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"UADETECTOR_VERSION_TRUNCATION", "nano"},
		{"UADETECTOR_CACHE_SIZE", "-1"},
		{"UADETECTOR_CACHE_SIZE", "many"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := uadetector.LoadConfig()
			assert.ErrorIs(t, err, uadetector.ErrInvalidConfig)
		})
	}
}

func TestConfig_Options(t *testing.T) {
	cfg, err := uadetector.LoadConfig()
	require.NoError(t, err)
	cfg.VersionTruncation = version.Major

	opts, closeFn, err := cfg.Options(context.Background())
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	t.Cleanup(func() { assert.NoError(t, closeFn()) })

	det, err := uadetector.New(opts...)
	require.NoError(t, err)

	info, ok := det.Detect(uaHTCDesire, nil)
	require.True(t, ok)
	assert.Equal(t, "4", info.Browser.Version)

	cfg.LogLevel = "loud"
	_, _, err = cfg.Options(context.Background())
	assert.ErrorIs(t, err, uadetector.ErrInvalidConfig)

	cfg.LogLevel = "info"
	cfg.Redis.ConnectionURL = "http://not-redis"
	_, _, err = cfg.Options(context.Background())
	assert.ErrorIs(t, err, uadetector.ErrConnectRedis)
}
