// Package common defines shared constants and sentinel errors used across
// the host and client layers of Vitrina. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Registration with an email that is already taken.
	ErrEmailTaken = errors.New("email already registered")

	// Login with an unknown email, a wrong password, or an account
	// that has no password set (external-provider accounts).
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Any token verification failure: malformed, bad signature, expired.
	// Deliberately not split further so callers treat every failure as
	// "no session".
	ErrTokenInvalid = errors.New("invalid token")

	// Encrypted storage is not available in the current context. Absorbed
	// by the credential store adapter, which falls back to plain storage.
	ErrStorageUnavailable = errors.New("secure storage unavailable")

	// No signing secret configured while running in production mode.
	ErrNoSecret = errors.New("no signing secret configured")
)
