package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DBCircuitBreaker guards a *sql.DB so a dead database sheds load
// immediately instead of holding every request until its deadline.
// The readiness probe also consults it to take the instance out of
// rotation while the circuit is open.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// DBConfig trips only on consecutive failures: FailureThreshold 1.0 with
// MinRequests 5 means five straight errors open the circuit, so a single
// slow query never does.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
	}
}

// NewDBCircuitBreaker wraps db with DBConfig.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return NewDBCircuitBreakerWithConfig(db, DBConfig())
}

// NewDBCircuitBreakerWithConfig wraps db with custom breaker settings.
func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(cfg),
		db: db,
	}
}

// QueryContext runs a query through the breaker. While the circuit is
// open it fails with gobreaker.ErrOpenState without touching the pool.
func (b *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// ExecContext runs a statement through the breaker.
func (b *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := b.cb.Execute(func() (interface{}, error) {
		return b.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// QueryRowContext bypasses the breaker: sql.Row defers its error to
// Scan, so there is nothing for the breaker to observe here.
func (b *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return b.db.QueryRowContext(ctx, query, args...)
}

// State returns the current breaker state.
func (b *DBCircuitBreaker) State() gobreaker.State {
	return b.cb.State()
}

// IsOpen reports whether the circuit is open.
func (b *DBCircuitBreaker) IsOpen() bool {
	return b.cb.IsOpen()
}

// DB exposes the raw handle for callers that must not be gated by the
// breaker, such as the health ping.
func (b *DBCircuitBreaker) DB() *sql.DB {
	return b.db
}
