package api

import (
	"errors"

	"github.com/dmitrijs2005/notevault/internal/common"
)

// Error is what leaves the server. Kind is one of the common sentinel
// errors; Message is safe to show to the caller.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Classify reduces err to a public Error. Unauthorized errors never say
// which check failed, and anything unrecognized becomes an internal error.
func Classify(err error) *Error {
	var pub *Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &pub):
		return pub
	case errors.Is(err, common.ErrorRateLimited):
		return &Error{Kind: common.ErrorRateLimited, Message: common.ErrorRateLimited.Error()}
	case errors.Is(err, common.ErrInvalidOrExpired):
		return &Error{Kind: common.ErrorUnauthorized, Message: common.ErrInvalidOrExpired.Error()}
	case errors.Is(err, common.ErrInvalidCode):
		return &Error{Kind: common.ErrorUnauthorized, Message: common.ErrInvalidCode.Error()}
	case errors.Is(err, common.ErrorUnauthorized):
		return &Error{Kind: common.ErrorUnauthorized, Message: common.ErrorUnauthorized.Error()}
	case errors.Is(err, common.ErrorValidation):
		return &Error{Kind: common.ErrorValidation, Message: err.Error()}
	case errors.Is(err, common.ErrorConflict):
		return &Error{Kind: common.ErrorConflict, Message: common.ErrorConflict.Error()}
	case errors.Is(err, common.ErrorNotFound):
		return &Error{Kind: common.ErrorNotFound, Message: common.ErrorNotFound.Error()}
	case errors.Is(err, common.ErrorCryptoFailure):
		return &Error{Kind: common.ErrorCryptoFailure, Message: common.ErrorCryptoFailure.Error()}
	default:
		return &Error{Kind: common.ErrorInternal, Message: common.ErrorInternal.Error()}
	}
}
