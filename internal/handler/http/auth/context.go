// Package auth provides the HTTP identity middleware. Identity is
// optional on most routes: the middleware parses a Bearer token into the
// request context and handlers decide whether anonymous access is
// allowed.
package auth

import "context"

type viewerKey struct{}

// WithViewer returns a context carrying the authenticated username.
func WithViewer(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, viewerKey{}, username)
}

// ViewerFromContext returns the authenticated username, or "" for
// anonymous requests.
func ViewerFromContext(ctx context.Context) string {
	username, _ := ctx.Value(viewerKey{}).(string)
	return username
}
