package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"conduit/pkg/config"
)

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STR", "value")
	assert.Equal(t, "value", config.GetEnvString("TEST_STR", "fallback"))
	assert.Equal(t, "fallback", config.GetEnvString("TEST_STR_UNSET", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, config.GetEnvInt("TEST_INT", 7))

	t.Setenv("TEST_INT", "не число")
	assert.Equal(t, 7, config.GetEnvInt("TEST_INT", 7))

	assert.Equal(t, 7, config.GetEnvInt("TEST_INT_UNSET", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, config.GetEnvBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "0")
	assert.False(t, config.GetEnvBool("TEST_BOOL", true))

	t.Setenv("TEST_BOOL", "yep")
	assert.True(t, config.GetEnvBool("TEST_BOOL", true))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "90s")
	assert.Equal(t, 90*time.Second, config.GetEnvDuration("TEST_DUR", time.Minute))

	t.Setenv("TEST_DUR", "soon")
	assert.Equal(t, time.Minute, config.GetEnvDuration("TEST_DUR", time.Minute))
}

func TestLoadRateLimitConfig(t *testing.T) {
	cfg := config.LoadRateLimitConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 5, cfg.Burst)

	t.Setenv("RATELIMIT_ENABLED", "false")
	t.Setenv("RATELIMIT_RPS", "2.5")
	cfg = config.LoadRateLimitConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 2.5, cfg.RPS)
}
