package config

import "time"

// RateLimitConfig controls the per-IP limiter on abuse-prone endpoints
// (login, signup, password reset).
type RateLimitConfig struct {
	Enabled         bool
	RPS             float64
	Burst           int
	CleanupInterval time.Duration
	MaxIdle         time.Duration
}

// LoadRateLimitConfig reads the RATELIMIT_* environment variables.
// Defaults allow short bursts while keeping credential stuffing slow.
func LoadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:         GetEnvBool("RATELIMIT_ENABLED", true),
		RPS:             GetEnvFloat("RATELIMIT_RPS", 1),
		Burst:           GetEnvInt("RATELIMIT_BURST", 5),
		CleanupInterval: GetEnvDuration("RATELIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		MaxIdle:         GetEnvDuration("RATELIMIT_MAX_IDLE", 10*time.Minute),
	}
}
