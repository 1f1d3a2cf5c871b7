package repository

import "context"

// SocialRepository manages the follow and favorite edges. Both edges are
// presence-only many-to-many relations protected by composite primary
// keys; a duplicate insert is reported as inserted=false rather than an
// error so concurrent toggles converge.
type SocialRepository interface {
	// InsertFollow adds a follow edge. Returns false if the edge
	// already existed.
	InsertFollow(ctx context.Context, follower, influencer string) (bool, error)
	// DeleteFollow removes a follow edge. Returns false if no edge
	// existed.
	DeleteFollow(ctx context.Context, follower, influencer string) (bool, error)
	IsFollowing(ctx context.Context, follower, influencer string) (bool, error)

	// InsertFavorite adds a favorite edge. Returns false if the edge
	// already existed.
	InsertFavorite(ctx context.Context, username, slug string) (bool, error)
	// DeleteFavorite removes a favorite edge. Returns false if no edge
	// existed.
	DeleteFavorite(ctx context.Context, username, slug string) (bool, error)
	IsFavorited(ctx context.Context, username, slug string) (bool, error)
}
