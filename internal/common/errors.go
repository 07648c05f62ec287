// Package common contains shared constants and sentinel errors used across
// PassVault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration / validation errors.
	ErrDuplicateEmail = errors.New("email already registered")
	ErrHashingFailed  = errors.New("password hashing failed")

	// Login errors. Unknown account and wrong password both collapse into
	// this value so the external response cannot be used for enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token lifecycle errors.
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidSubject = errors.New("token has no subject")

	// Refresh gate errors.
	ErrMissingAuthHeader = errors.New("authorization header is missing")
	ErrMalformedToken    = errors.New("malformed bearer token")
	ErrSessionMismatch   = errors.New("refresh token does not match stored session")

	// Cipher errors.
	ErrDecryptionFailed = errors.New("decryption failed")
)
