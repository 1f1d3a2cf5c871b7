package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation (duplicate username or email on signup).
const uniqueViolation = "23505"

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

// Get retrieves a user by username. Returns (nil, nil) if not found.
func (repo *UserRepo) Get(ctx context.Context, username string) (*entity.User, error) {
	const query = `
SELECT username, email, password_hash, bio, image
FROM users
WHERE username = $1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username, &user.Email, &user.PasswordHash, &user.Bio, &user.Image)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) if not found.
func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT username, email, password_hash, bio, image
FROM users
WHERE email = $1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, email).Scan(
		&user.Username, &user.Email, &user.PasswordHash, &user.Bio, &user.Image)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return &user, nil
}

// GetProfile retrieves the viewer-relative public profile.
// Returns (nil, nil) if the user is not found.
func (repo *UserRepo) GetProfile(ctx context.Context, username, viewer string) (*entity.Profile, error) {
	const query = `
SELECT username, bio, image,
       EXISTS (SELECT 1 FROM follows f WHERE f.follower = $2 AND f.influencer = users.username) AS following
FROM users
WHERE username = $1`
	var profile entity.Profile
	err := repo.db.QueryRowContext(ctx, query, username, viewer).Scan(
		&profile.Username, &profile.Bio, &profile.Image, &profile.Following)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetProfile: %w", err)
	}
	return &profile, nil
}

// Create inserts a new account. Unique constraint violations are mapped
// to entity.ErrAlreadyExists naming the offending field so the signup
// form can point at it.
func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (username, email, password_hash, bio, image)
VALUES ($1, $2, $3, $4, $5)`
	_, err := repo.db.ExecContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.Bio, user.Image)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return fmt.Errorf("email %w", entity.ErrAlreadyExists)
			}
			return fmt.Errorf("username %w", entity.ErrAlreadyExists)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// Update rewrites the mutable account fields.
func (repo *UserRepo) Update(ctx context.Context, user *entity.User) error {
	const query = `
UPDATE users
SET email = $2, bio = $3, image = $4
WHERE username = $1`
	result, err := repo.db.ExecContext(ctx, query,
		user.Username, user.Email, user.Bio, user.Image)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("email %w", entity.ErrAlreadyExists)
		}
		return fmt.Errorf("Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: rows affected: %w", err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash for the account that
// owns the email address.
func (repo *UserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2 WHERE email = $1`
	result, err := repo.db.ExecContext(ctx, query, email, passwordHash)
	if err != nil {
		return fmt.Errorf("UpdatePassword: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("UpdatePassword: rows affected: %w", err)
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
