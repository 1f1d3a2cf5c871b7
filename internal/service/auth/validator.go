package auth

import (
	"fmt"
	"os"
	"strings"
)

// weakSecretList contains common placeholder secrets that must be rejected.
var weakSecretList = []string{
	"secret",
	"password",
	"changeme",
	"jwt_secret",
	"jwtsecret",
	"supersecret",
	"default",
	"test",
	"dev",
	"development",
}

// minSecretLength is the minimum required length for the JWT signing
// secret. HS256 security degrades sharply below the hash block size.
const minSecretLength = 32

// ValidateJWTSecret validates the JWT signing secret from the environment
// at application startup. It must be called before the server starts so a
// missing or weak secret fails the boot instead of silently issuing
// forgeable tokens.
//
// Security requirements:
//   - JWT_SECRET must not be empty
//   - JWT_SECRET must be at least 32 characters
//   - JWT_SECRET must not match common placeholder values
//
// The returned error is safe to log; it never echoes the secret itself.
func ValidateJWTSecret() error {
	secret := os.Getenv("JWT_SECRET")

	if secret == "" {
		return fmt.Errorf("jwt secret validation failed: JWT_SECRET must not be empty")
	}

	if len(secret) < minSecretLength {
		return fmt.Errorf("jwt secret validation failed: JWT_SECRET must be at least %d characters (current length: %d)", minSecretLength, len(secret))
	}

	lowerSecret := strings.ToLower(secret)
	for _, weak := range weakSecretList {
		if lowerSecret == weak || strings.HasPrefix(lowerSecret, weak+"123") {
			return fmt.Errorf("jwt secret validation failed: JWT_SECRET must not be a common placeholder value")
		}
	}

	return nil
}
