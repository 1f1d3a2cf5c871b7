package user

import "errors"

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so login failures do not leak which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserNotFound indicates the account does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidResetToken indicates the reset token is expired, malformed
	// or was issued for another purpose.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
