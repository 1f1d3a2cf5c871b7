package logging_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"conduit/internal/handler/http/requestid"
	"conduit/internal/observability/logging"
)

func TestNewLogger_LevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	logger := logging.NewLogger()
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	t.Setenv("LOG_LEVEL", "")
	logger = logging.NewLogger()
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestWithRequestID(t *testing.T) {
	base := slog.Default()

	// without an ID the logger is returned unchanged
	assert.Same(t, base, logging.WithRequestID(context.Background(), base))

	ctx := requestid.NewContext(context.Background(), "req-123")
	assert.NotSame(t, base, logging.WithRequestID(ctx, base))
}

func TestContextLogger(t *testing.T) {
	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))

	custom := logging.NewTextLogger()
	ctx := logging.WithLogger(context.Background(), custom)
	assert.Same(t, custom, logging.FromContext(ctx))
}
