package application

import "errors"

var (
	// ErrConflict means the username or email is already taken. The original
	// account is left untouched.
	ErrConflict = errors.New("username or email already registered")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike, so callers cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrEmailNotVerified means the credentials were correct but the account
	// has not completed OTP verification.
	ErrEmailNotVerified = errors.New("verify your email first")

	// ErrOTPInvalid covers a missing, expired, already consumed, or
	// mismatched verification code.
	ErrOTPInvalid = errors.New("invalid or expired OTP")

	// ErrUserNotFound is returned by operations that reference an account
	// which does not exist.
	ErrUserNotFound = errors.New("user not found")
)
