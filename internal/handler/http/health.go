package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"conduit/internal/handler/http/respond"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports overall service health including the database.
type HealthHandler struct {
	DB      *sql.DB
	Version string
}

// ServeHTTP health check
// @Summary      Health check
// @Description  Returns service health including database connectivity.
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      503 {object} map[string]string
// @Router       /health [get]
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	status := map[string]string{
		"status":  "ok",
		"version": h.Version,
	}
	if err := h.DB.PingContext(ctx); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
		respond.JSON(w, http.StatusServiceUnavailable, status)
		return
	}
	status["database"] = "ok"
	respond.JSON(w, http.StatusOK, status)
}

// BreakerProbe reports whether a protective circuit is currently open.
type BreakerProbe interface {
	IsOpen() bool
}

// ReadyHandler reports whether the service can accept traffic. A tripped
// database circuit breaker fails readiness before the ping is attempted.
type ReadyHandler struct {
	DB      *sql.DB
	Breaker BreakerProbe
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if h.Breaker != nil && h.Breaker.IsOpen() {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready", "database": "circuit open"})
		return
	}
	if err := h.DB.PingContext(ctx); err != nil {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// LiveHandler reports process liveness only. It never touches
// dependencies so a wedged database does not restart the process.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
