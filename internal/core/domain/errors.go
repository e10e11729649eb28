package domain

import (
	"errors"
	"fmt"
)

var ErrBlogNotFound = errors.New("blog not found")
var ErrUserNotFound = errors.New("user not found")
var ErrNotOwner = errors.New("post does not belong to the requesting user")
var ErrEditForbidden = errors.New("post can only be modified by its owner")
var ErrInvalidToken = errors.New("token missing or invalid")
var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUsernameTaken = errors.New("expected `username` to be unique")
var ErrMalformedID = errors.New("malformed id")

// ValidationError reports a request that failed entity validation. It is
// raised before any write commits, and its message is surfaced verbatim to
// the caller, offending values included.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
