// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article, User, and Comment, along
// with their validation rules and domain-specific errors.
package entity

import "time"

// Author represents the public identity of a user as seen from another
// user's perspective. Following is derived relative to the viewer and is
// always false for anonymous requests.
type Author struct {
	Username  string
	Bio       string
	Image     string
	Following bool
}

// Article represents a full article entity in the system.
// Fav and Author.Following are viewer-relative: the same stored row yields
// different values depending on who is asking.
type Article struct {
	Slug        string
	Title       string
	Description string
	Body        string
	Tags        []string
	Author      Author
	Fav         bool
	FavCount    int64
	CommentsCnt int64
	CreatedAt   time.Time
}

// ArticleSummary is the feed representation of an article: everything a
// list view needs except the body.
type ArticleSummary struct {
	Slug        string
	Title       string
	Description string
	Tags        []string
	Author      Author
	Fav         bool
	FavCount    int64
	CommentsCnt int64
	CreatedAt   time.Time
}

// SearchHit is a single full-text search result. Title, Description and
// Body carry highlight markers around matched terms when the search was
// configured with them.
type SearchHit struct {
	Slug        string
	Title       string
	Description string
	Body        string
	Author      string
	CreatedAt   time.Time
}
