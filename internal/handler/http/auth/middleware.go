package auth

import (
	"net/http"
	"strings"

	"conduit/internal/handler/http/respond"
	authservice "conduit/internal/service/auth"
)

// Authn parses the Authorization header. A valid Bearer token puts the
// username into the request context; a missing header leaves the request
// anonymous. A present but invalid token is rejected with 401 so expired
// sessions fail loudly instead of silently downgrading to anonymous.
func Authn(tokens *authservice.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				recordAuth("anonymous")
				next.ServeHTTP(w, r)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				recordAuth("malformed")
				unauthorized(w)
				return
			}
			username, err := tokens.VerifySession(strings.TrimSpace(token))
			if err != nil {
				recordAuth("rejected")
				unauthorized(w)
				return
			}

			recordAuth("authenticated")
			next.ServeHTTP(w, r.WithContext(WithViewer(r.Context(), username)))
		})
	}
}

// RequireAuth rejects anonymous requests. It must run inside Authn.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ViewerFromContext(r.Context()) == "" {
			recordAuth("required")
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
}
