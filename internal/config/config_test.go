package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load([]string{"-root", "http://localhost", "-port", "8080"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost", cfg.RootURL)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "urls.db", cfg.DatabasePath)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 60*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, 100, cfg.RateLimitMax)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load([]string{
		"-root", "https://sho.rt",
		"-port", "9000",
		"-db", "/tmp/test.db",
		"-redis", "localhost:6379",
		"-rate-window", "30",
		"-rate-max", "10",
	})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	assert.Equal(t, 10, cfg.RateLimitMax)
}

func TestLoadMissingRequired(t *testing.T) {
	_, err := Load([]string{"-port", "8080"})
	assert.ErrorContains(t, err, "root URL is required")

	_, err = Load([]string{"-root", "http://localhost"})
	assert.ErrorContains(t, err, "port is required")
}
