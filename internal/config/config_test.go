package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"FORGE_API_KEY",
		"FORGE_BASE_URL",
		"FORGE_REASONING_SPEED",
		"FORGE_TRACK",
		"FORGE_TIMEOUT_SEC",
		"FORGE_POLL_INTERVAL_SEC",
		"FORGE_MAX_RETRIES",
		"LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORGE_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.Forge.APIKey)
	assert.Equal(t, "https://forge-api.nousresearch.com/v1", cfg.Forge.BaseURL)
	assert.Equal(t, "medium", cfg.Forge.ReasoningSpeed)
	assert.False(t, cfg.Forge.Track)
	assert.Equal(t, 300*time.Second, cfg.Forge.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Forge.PollInterval)
	assert.Equal(t, 5, cfg.Forge.MaxRetries)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORGE_API_KEY", "test-key")
	t.Setenv("FORGE_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("FORGE_REASONING_SPEED", "slow")
	t.Setenv("FORGE_TRACK", "true")
	t.Setenv("FORGE_TIMEOUT_SEC", "60")
	t.Setenv("FORGE_POLL_INTERVAL_SEC", "2")
	t.Setenv("FORGE_MAX_RETRIES", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/v1", cfg.Forge.BaseURL)
	assert.Equal(t, "slow", cfg.Forge.ReasoningSpeed)
	assert.True(t, cfg.Forge.Track)
	assert.Equal(t, time.Minute, cfg.Forge.Timeout)
	assert.Equal(t, 2*time.Second, cfg.Forge.PollInterval)
	assert.Equal(t, 3, cfg.Forge.MaxRetries)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoad_InvalidSpeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORGE_API_KEY", "test-key")
	t.Setenv("FORGE_REASONING_SPEED", "warp")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidSpeed)
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORGE_API_KEY", "test-key")
	t.Setenv("FORGE_TIMEOUT_SEC", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 300*time.Second, cfg.Forge.Timeout)
}
