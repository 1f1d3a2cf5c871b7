// Package resilience groups the fault tolerance helpers used around the
// app's two fragile edges: the database (circuit breaker) and reset-mail
// delivery (retry with backoff).
//
//	breaker := circuitbreaker.NewDBCircuitBreaker(db)
//	rows, err := breaker.QueryContext(ctx, query, args...)
//
//	err := retry.WithBackoff(ctx, retry.MailerConfig(), func() error {
//	    return deliver(ctx, msg)
//	})
package resilience
