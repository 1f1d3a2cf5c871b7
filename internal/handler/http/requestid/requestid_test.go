package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"conduit/internal/handler/http/requestid"
)

func TestMiddleware(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestid.FromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/articles", nil)
	req.Header.Set(requestid.HeaderName, "client-forged-id")

	requestid.Middleware(next).ServeHTTP(rec, req)

	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "client-forged-id", seen)
	assert.Equal(t, seen, rec.Header().Get(requestid.HeaderName))
}

func TestMiddleware_UniquePerRequest(t *testing.T) {
	ids := map[string]bool{}
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ids[requestid.FromContext(r.Context())] = true
	})
	h := requestid.Middleware(next)

	for i := 0; i < 10; i++ {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	assert.Len(t, ids, 10)
}

func TestFromContext_Missing(t *testing.T) {
	assert.Empty(t, requestid.FromContext(context.Background()))
}
