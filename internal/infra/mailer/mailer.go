// Package mailer provides the outbound mail boundary for password
// resets. Delivery is best-effort: the reset flow treats a failed send
// as a server fault but never reveals to the caller whether the address
// exists.
package mailer

import "context"

// Mailer delivers account mail.
type Mailer interface {
	// SendPasswordReset delivers a reset link carrying the token to
	// the given address.
	SendPasswordReset(ctx context.Context, email, token string) error
}
