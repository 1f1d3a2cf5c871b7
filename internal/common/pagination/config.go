package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or config files.
type Config struct {
	DefaultAmount int // Default items per page (typically 10)
	MaxAmount     int // Maximum allowed items per page (typically 100)
}

// DefaultConfig returns the default pagination configuration.
func DefaultConfig() Config {
	return Config{
		DefaultAmount: DefaultAmount,
		MaxAmount:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_AMOUNT: Default items per page
//   - PAGINATION_MAX_AMOUNT: Maximum items per page
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultAmount: getEnvAsInt("PAGINATION_DEFAULT_AMOUNT", DefaultAmount),
		MaxAmount:     getEnvAsInt("PAGINATION_MAX_AMOUNT", 100),
	}
}

// Clamp caps params against the configured maximum. Decoding stays
// permissive; clamping is applied only where a handler opts in to it.
// A zero Config clamps nothing.
func (c Config) Clamp(params PageParams) PageParams {
	if c.MaxAmount > 0 && params.Amount > c.MaxAmount {
		params.Amount = c.MaxAmount
	}
	return params
}

// getEnvAsInt retrieves an environment variable and parses it as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
