package repository

import (
	"context"

	"conduit/internal/domain/entity"
)

type UserRepository interface {
	// Get retrieves a user by username.
	// Returns (nil, nil) if the user is not found.
	Get(ctx context.Context, username string) (*entity.User, error)
	// GetByEmail retrieves a user by email address.
	// Returns (nil, nil) if no account uses the address.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetProfile retrieves the viewer-relative public profile.
	// Returns (nil, nil) if the user is not found.
	GetProfile(ctx context.Context, username, viewer string) (*entity.Profile, error)
	// Create inserts a new account. Duplicate usernames or emails
	// surface as entity.ErrAlreadyExists wrapped with the offending
	// field.
	Create(ctx context.Context, user *entity.User) error
	// Update rewrites the mutable account fields (email, bio, image).
	Update(ctx context.Context, user *entity.User) error
	// UpdatePassword replaces the stored password hash for the account
	// that owns the email address.
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}
