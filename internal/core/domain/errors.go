package domain

import "errors"

var (
	// ErrInvalidCredentials covers unknown email and password mismatch alike,
	// so login failures never reveal whether an account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken signals a case-insensitive duplicate registration.
	ErrEmailTaken = errors.New("email already used")

	// ErrUserNotFound is returned by the user repository only; the auth
	// service converts it before it can reach a client.
	ErrUserNotFound = errors.New("user not found")

	// ErrAssetNotFound covers both a nonexistent asset id and an asset owned
	// by another user. The two cases are indistinguishable to the caller.
	ErrAssetNotFound = errors.New("not found")
)

// ValidationError marks malformed or out-of-range input. The reason is safe
// to show to the client.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Invalid builds a ValidationError with the given client-facing reason.
func Invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
