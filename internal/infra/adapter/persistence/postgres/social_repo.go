package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"conduit/internal/repository"
)

// SocialRepo manages the follow and favorite edge tables. Both tables
// carry a composite primary key, so concurrent inserts of the same edge
// cannot produce duplicates; ON CONFLICT DO NOTHING turns the losing
// insert into a zero-row no-op instead of an error.
type SocialRepo struct {
	db *sql.DB
}

func NewSocialRepo(db *sql.DB) repository.SocialRepository {
	return &SocialRepo{db: db}
}

// InsertFollow adds a follow edge. Returns false if the edge already existed.
func (repo *SocialRepo) InsertFollow(ctx context.Context, follower, influencer string) (bool, error) {
	const query = `
INSERT INTO follows (follower, influencer)
VALUES ($1, $2)
ON CONFLICT (follower, influencer) DO NOTHING`
	result, err := repo.db.ExecContext(ctx, query, follower, influencer)
	if err != nil {
		return false, fmt.Errorf("InsertFollow: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("InsertFollow: rows affected: %w", err)
	}
	return affected > 0, nil
}

// DeleteFollow removes a follow edge. Returns false if no edge existed.
func (repo *SocialRepo) DeleteFollow(ctx context.Context, follower, influencer string) (bool, error) {
	const query = `DELETE FROM follows WHERE follower = $1 AND influencer = $2`
	result, err := repo.db.ExecContext(ctx, query, follower, influencer)
	if err != nil {
		return false, fmt.Errorf("DeleteFollow: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("DeleteFollow: rows affected: %w", err)
	}
	return affected > 0, nil
}

func (repo *SocialRepo) IsFollowing(ctx context.Context, follower, influencer string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM follows WHERE follower = $1 AND influencer = $2)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, follower, influencer).Scan(&exists); err != nil {
		return false, fmt.Errorf("IsFollowing: %w", err)
	}
	return exists, nil
}

// InsertFavorite adds a favorite edge. Returns false if the edge already existed.
func (repo *SocialRepo) InsertFavorite(ctx context.Context, username, slug string) (bool, error) {
	const query = `
INSERT INTO favorite_articles (username, article_slug)
VALUES ($1, $2)
ON CONFLICT (username, article_slug) DO NOTHING`
	result, err := repo.db.ExecContext(ctx, query, username, slug)
	if err != nil {
		return false, fmt.Errorf("InsertFavorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("InsertFavorite: rows affected: %w", err)
	}
	return affected > 0, nil
}

// DeleteFavorite removes a favorite edge. Returns false if no edge existed.
func (repo *SocialRepo) DeleteFavorite(ctx context.Context, username, slug string) (bool, error) {
	const query = `DELETE FROM favorite_articles WHERE username = $1 AND article_slug = $2`
	result, err := repo.db.ExecContext(ctx, query, username, slug)
	if err != nil {
		return false, fmt.Errorf("DeleteFavorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("DeleteFavorite: rows affected: %w", err)
	}
	return affected > 0, nil
}

func (repo *SocialRepo) IsFavorited(ctx context.Context, username, slug string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM favorite_articles WHERE username = $1 AND article_slug = $2)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, username, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("IsFavorited: %w", err)
	}
	return exists, nil
}
