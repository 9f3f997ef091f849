package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadRateLimitConfigClampsWindow(t *testing.T) {
	t.Setenv("RATE_LIMIT_WINDOW", "250ms")
	cfg := LoadRateLimitConfig()
	assert.Equal(t, time.Second, cfg.Window)

	t.Setenv("RATE_LIMIT_WINDOW", "-5s")
	cfg = LoadRateLimitConfig()
	assert.Equal(t, time.Second, cfg.Window)
}

func TestLoadRateLimitConfigClampsLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "0")
	cfg := LoadRateLimitConfig()
	assert.Equal(t, 1, cfg.Limit)
}
