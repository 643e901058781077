package auth

import "errors"

var (
	// ErrVerificationRequired is returned when a login attempt arrives without
	// a completed human-verification token.
	ErrVerificationRequired = errors.New("verification required")

	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserAccountDisabled is returned when attempting to authenticate a disabled user account.
	ErrUserAccountDisabled = errors.New("user account is disabled")

	// ErrAccessDenied is returned when the credentials are valid but the
	// account holds no admin grant. The pending session is discarded.
	ErrAccessDenied = errors.New("access denied")
)
