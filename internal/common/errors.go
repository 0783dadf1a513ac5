// Package common defines shared constants and sentinel errors used across
// client and server layers of eventplanner. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Authentication errors. Unknown email and wrong password share
	// ErrInvalidCredentials so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrNotAuthenticated   = errors.New("not authenticated")

	// Authorization errors. A resource owned by someone else and a missing
	// resource are reported identically.
	ErrNotFoundOrForbidden = errors.New("event not found or access denied")

	// Token verification errors. Outside of the auth package they only show
	// up wrapped in ErrNotAuthenticated.
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")
)
