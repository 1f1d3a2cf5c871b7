package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. A reset token must never be accepted as a session and
// vice versa, so every token carries its purpose as a claim.
const (
	purposeSession = "session"
	purposeReset   = "password_reset"
)

// Default token lifetimes.
const (
	DefaultSessionTTL = 24 * time.Hour
	DefaultResetTTL   = time.Hour
)

// ErrInvalidToken indicates a token that failed verification: bad
// signature, wrong algorithm, expired, or wrong purpose.
var ErrInvalidToken = errors.New("invalid token")

// TokenService issues and verifies the HS256 JWTs used for sessions and
// password resets.
type TokenService struct {
	secret     []byte
	sessionTTL time.Duration
	resetTTL   time.Duration
}

// NewTokenService creates a token service with default lifetimes.
func NewTokenService(secret []byte) *TokenService {
	return &TokenService{
		secret:     secret,
		sessionTTL: DefaultSessionTTL,
		resetTTL:   DefaultResetTTL,
	}
}

// IssueSession issues a session token with the username as subject.
func (s *TokenService) IssueSession(username string) (string, error) {
	return s.issue(username, purposeSession, s.sessionTTL)
}

// VerifySession verifies a session token and returns the username.
func (s *TokenService) VerifySession(token string) (string, error) {
	return s.verify(token, purposeSession)
}

// IssueReset issues a password-reset token with the account email as
// subject. Reset tokens expire after one hour.
func (s *TokenService) IssueReset(email string) (string, error) {
	return s.issue(email, purposeReset, s.resetTTL)
}

// VerifyReset verifies a reset token and returns the account email.
func (s *TokenService) VerifyReset(token string) (string, error) {
	return s.verify(token, purposeReset)
}

func (s *TokenService) issue(subject, purpose string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     subject,
		"purpose": purpose,
		"exp":     time.Now().Add(ttl).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) verify(tokenString, purpose string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return "", ErrInvalidToken
	}
	if p, ok := claims["purpose"].(string); !ok || p != purpose {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
