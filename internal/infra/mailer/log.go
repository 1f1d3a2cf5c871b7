package mailer

import (
	"context"
	"log/slog"

	"conduit/internal/resilience/retry"
)

// LogMailer writes reset mail to the structured log instead of an SMTP
// relay. It is the default in environments without outbound mail; an
// operator reads the token out of the log to complete the flow.
type LogMailer struct {
	logger      *slog.Logger
	rateLimiter *RateLimiter
	retryCfg    retry.Config
}

// NewLogMailer creates a mailer that logs instead of sending.
// Rate limited to 1 mail/second with a burst of 3.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{
		logger:      logger,
		rateLimiter: NewRateLimiter(1.0, 3),
		retryCfg:    retry.MailerConfig(),
	}
}

// SendPasswordReset logs the reset mail. The retry wrapper matches the
// SMTP implementations so swapping mailers doesn't change delivery
// semantics.
func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	if err := m.rateLimiter.Allow(ctx); err != nil {
		return err
	}
	return retry.WithBackoff(ctx, m.retryCfg, func() error {
		m.logger.Info("password reset mail",
			slog.String("to", email),
			slog.String("reset_token", token))
		return nil
	})
}
