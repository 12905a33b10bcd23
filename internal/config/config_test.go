package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:5050", cfg.Server.Addr)
	assert.Equal(t, "http://localhost:4242", cfg.Ollama.BaseURL)
	assert.Equal(t, "mistral", cfg.Ollama.Model)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ADDR", ":8080")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("OLLAMA_MODEL", "llama3")
	t.Setenv("SESSION_TTL_HOURS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Redis.URL)
	assert.Equal(t, "llama3", cfg.Ollama.Model)
	assert.Equal(t, 2*time.Hour, cfg.Session.TTL)
}

func TestLoadBadTTLFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}

func TestLoadRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("SESSION_TTL_HOURS", "0")

	_, err := Load()
	assert.Error(t, err)
}
