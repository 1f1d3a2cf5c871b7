package repository

import (
	"context"

	"conduit/internal/domain/entity"
)

// FeedQuery carries the resolved parameters for a feed listing. Viewer is
// the caller's username and may be empty for anonymous requests; derived
// fields (fav, author.following) are computed relative to it.
type FeedQuery struct {
	Viewer string
	Offset int
	Limit  int

	// Exactly one of the selectors below is set per query; all empty
	// means the global feed.
	Tag         string // tag-filtered feed
	FollowedBy  string // articles authored by users this user follows
	AuthoredBy  string // articles authored by the named user
	FavoritedBy string // articles favorited by the named user
}

// ArticleDraft is the validated editor input handed to Create/Update.
type ArticleDraft struct {
	Slug        string
	Title       string
	Description string
	Body        string
	Author      string
	Tags        []string
}

type ArticleRepository interface {
	// ListFeed retrieves one page of article summaries for the given
	// query, ordered newest first. Returns at most query.Limit rows.
	ListFeed(ctx context.Context, query FeedQuery) ([]*entity.ArticleSummary, error)
	// Get retrieves a single article by slug with viewer-relative
	// derived fields. Returns (nil, nil) if the article is not found.
	Get(ctx context.Context, slug, viewer string) (*entity.Article, error)
	// Create inserts the article and its tag memberships in one
	// transaction.
	Create(ctx context.Context, draft ArticleDraft) error
	// Update rewrites the article row and atomically replaces its tag
	// set; no reader observes new content with stale tags.
	Update(ctx context.Context, draft ArticleDraft) error
	Delete(ctx context.Context, slug string) error
	// AuthorOf returns the username that authored the slug.
	// Returns ("", nil) if the article is not found.
	AuthorOf(ctx context.Context, slug string) (string, error)
}
