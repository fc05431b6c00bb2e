// Package common defines shared constants and sentinel errors used across
// client and server layers of notevault. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")

	// Service-level errors.
	ErrorInternal      = errors.New("internal error")
	ErrorUnauthorized  = errors.New("unauthorized")
	ErrorValidation    = errors.New("validation error")
	ErrorRateLimited   = errors.New("rate limited")
	ErrorCryptoFailure = errors.New("crypto failure")

	// Validation details. All of them match ErrorValidation.
	ErrLengthMismatch     = fmt.Errorf("%w: length mismatch", ErrorValidation)
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported version", ErrorValidation)
	ErrEmailRequired      = fmt.Errorf("%w: email is required when totp is disabled", ErrorValidation)
	ErrUsernameRequired   = fmt.Errorf("%w: username is required", ErrorValidation)
	ErrInvalidAuthMethod  = fmt.Errorf("%w: invalid auth method", ErrorValidation)
	ErrTOTPNotEnabled     = fmt.Errorf("%w: totp is not enabled", ErrorValidation)

	// Challenge failures. Both match ErrorUnauthorized and never say which
	// part of the challenge was wrong.
	ErrInvalidOrExpired = fmt.Errorf("%w: invalid or expired", ErrorUnauthorized)
	ErrInvalidCode      = fmt.Errorf("%w: invalid code", ErrorUnauthorized)
)
