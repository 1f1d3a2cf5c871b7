package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"conduit/internal/domain/entity"
	"conduit/internal/infra/mailer"
	"conduit/internal/observability/metrics"
	"conduit/internal/repository"
	"conduit/internal/service/auth"
)

// Service implements account lifecycle: signup, login, settings and the
// password reset flow.
type Service struct {
	Users  repository.UserRepository
	Tokens *auth.TokenService
	Mailer mailer.Mailer
	Logger *slog.Logger
}

// Session pairs an authenticated user with a fresh session token.
type Session struct {
	User  *entity.User
	Token string
}

// Signup validates the fields, hashes the password and creates the
// account, returning a session for the new user.
func (s *Service) Signup(ctx context.Context, username, email, password string) (*Session, error) {
	if err := entity.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword(password); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("Signup: %w", err)
	}
	u := &entity.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("Signup: %w", err)
	}
	metrics.UsersRegistered.Inc()
	return s.newSession(u)
}

// Login verifies the credentials and issues a session. Unknown usernames
// and wrong passwords produce the same error.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	u, err := s.Users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("Login: %w", err)
	}
	if u == nil {
		metrics.Logins.WithLabelValues("rejected").Inc()
		return nil, ErrInvalidCredentials
	}
	if err := auth.VerifyPassword(u.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.Logins.WithLabelValues("rejected").Inc()
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("Login: %w", err)
	}
	metrics.Logins.WithLabelValues("success").Inc()
	return s.newSession(u)
}

// Current returns the account behind an authenticated username.
func (s *Service) Current(ctx context.Context, username string) (*entity.User, error) {
	u, err := s.Users.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("Current: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Settings carries the mutable account fields. Nil pointers leave the
// current value untouched.
type Settings struct {
	Email    *string
	Bio      *string
	Image    *string
	Password *string
}

// UpdateSettings applies the provided fields to the caller's account.
func (s *Service) UpdateSettings(ctx context.Context, username string, settings Settings) (*entity.User, error) {
	u, err := s.Current(ctx, username)
	if err != nil {
		return nil, err
	}
	if settings.Email != nil {
		if err := entity.ValidateEmail(*settings.Email); err != nil {
			return nil, err
		}
		u.Email = *settings.Email
	}
	if settings.Bio != nil {
		u.Bio = *settings.Bio
	}
	if settings.Image != nil {
		u.Image = *settings.Image
	}
	if settings.Password != nil {
		if err := entity.ValidatePassword(*settings.Password); err != nil {
			return nil, err
		}
		hash, err := auth.HashPassword(*settings.Password)
		if err != nil {
			return nil, fmt.Errorf("UpdateSettings: %w", err)
		}
		u.PasswordHash = hash
	}
	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, entity.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("UpdateSettings: %w", err)
	}
	return u, nil
}

// RequestPasswordReset issues a reset token and mails it to the address.
// It succeeds whether or not the address belongs to an account, so the
// endpoint cannot be used to probe for registered emails.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("RequestPasswordReset: %w", err)
	}
	if u == nil {
		s.logger().InfoContext(ctx, "password reset requested for unknown address")
		return nil
	}

	token, err := s.Tokens.IssueReset(u.Email)
	if err != nil {
		return fmt.Errorf("RequestPasswordReset: %w", err)
	}
	if err := s.Mailer.SendPasswordReset(ctx, u.Email, token); err != nil {
		return fmt.Errorf("RequestPasswordReset: %w", err)
	}
	return nil
}

// ResetPassword verifies the token and replaces the account password.
func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	email, err := s.Tokens.VerifyReset(token)
	if err != nil {
		return ErrInvalidResetToken
	}
	if err := entity.ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("ResetPassword: %w", err)
	}
	if err := s.Users.UpdatePassword(ctx, email, hash); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("ResetPassword: %w", err)
	}
	return nil
}

func (s *Service) newSession(u *entity.User) (*Session, error) {
	token, err := s.Tokens.IssueSession(u.Username)
	if err != nil {
		return nil, fmt.Errorf("newSession: %w", err)
	}
	return &Session{User: u, Token: token}, nil
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
