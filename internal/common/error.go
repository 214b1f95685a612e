// Package common defines shared constants and sentinel errors used across
// the RateMyStore client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (rejected or malformed credentials).
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// Transport errors (non-2xx responses and network failures).
	ErrRequestFailed = errors.New("request failed")
)
