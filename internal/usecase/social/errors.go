package social

import "errors"

var (
	// ErrIdentityRequired indicates a toggle was attempted anonymously.
	ErrIdentityRequired = errors.New("identity required")
	// ErrSelfFollow indicates a user tried to follow themselves.
	ErrSelfFollow = errors.New("cannot follow yourself")
	// ErrOwnArticle indicates a user tried to favorite their own article.
	ErrOwnArticle = errors.New("cannot favorite your own article")
	// ErrUserNotFound indicates the target profile does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrArticleNotFound indicates the target article does not exist.
	ErrArticleNotFound = errors.New("article not found")
)
