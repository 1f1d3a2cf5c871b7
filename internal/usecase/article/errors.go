package article

import "errors"

var (
	// ErrArticleNotFound indicates the requested slug does not exist.
	ErrArticleNotFound = errors.New("article not found")
	// ErrNotAuthor indicates the caller does not own the article.
	ErrNotAuthor = errors.New("not the article author")
	// ErrIdentityRequired indicates a write operation was attempted anonymously.
	ErrIdentityRequired = errors.New("identity required")
)
