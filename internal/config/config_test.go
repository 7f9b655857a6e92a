package config

import (
	"adsync/internal/config/configs"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.False(t, cfg.Store.UseMemory())
	assert.Equal(t, 10*time.Second, cfg.Platform.ListTimeout)
	assert.Equal(t, 120*time.Second, cfg.Platform.RejectedBackoff)

	windows := cfg.RateLimit.Windows()
	assert.Equal(t, 20, windows["api"].Limit)
	assert.Equal(t, time.Minute, windows["api"].Length)
	assert.Equal(t, 10, windows["sync"].Limit)
	assert.Equal(t, 5*time.Minute, windows["sync"].Length)
	assert.Equal(t, 5, windows["auth"].Limit)
	assert.Equal(t, 3, windows["sensitive"].Limit)
	assert.Equal(t, time.Hour, windows["sensitive"].Length)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("RATELIMIT_SYNC_LIMIT", "2")
	t.Setenv("RATELIMIT_SYNC_WINDOW", "30s")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)

	sync := cfg.RateLimit.Windows()["sync"]
	assert.Equal(t, 2, sync.Limit)
	assert.Equal(t, 30*time.Second, sync.Length)
	assert.True(t, cfg.Store.UseMemory())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoggerLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	} {
		assert.Equal(t, want, configs.Logger{Level: in}.SlogLevel(), in)
	}
}
