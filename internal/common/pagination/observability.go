package pagination

import (
	"log/slog"
	"time"
)

// LogRequest records an incoming paginated request with its decoded
// parameters. username is empty for anonymous callers.
func LogRequest(logger *slog.Logger, requestID, username string, params PageParams) {
	logger.Debug("paginated request",
		"request_id", requestID,
		"username", username,
		"page", params.Page,
		"amount", params.Amount,
		"tag", params.Tag,
		"my_feed", params.MyFeed)
}

// LogResponse records the outcome of a paginated request.
func LogResponse(logger *slog.Logger, requestID string, params PageParams, returnedCount int, duration time.Duration, statusCode int) {
	logger.Debug("paginated response",
		"request_id", requestID,
		"page", params.Page,
		"amount", params.Amount,
		"returned_count", returnedCount,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)
}

// LogError records a failed paginated request.
func LogError(logger *slog.Logger, requestID string, params PageParams, err error, errorType string) {
	logger.Error("pagination error",
		"request_id", requestID,
		"page", params.Page,
		"amount", params.Amount,
		"error", err.Error(),
		"error_type", errorType)
}
