package http

import (
	"context"
	"net/http"
	"time"
)

// WithTimeout puts a deadline on every request context so repository
// calls and the database driver abort when d elapses. Handlers observe
// the cancellation through ctx; the middleware itself never writes.
func WithTimeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
