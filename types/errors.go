package types

import "errors"

// Domain errors returned by services and repositories. Handlers map these to
// HTTP statuses; anything unrecognized becomes a 500.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrValidation         = errors.New("validation error")
	ErrInvalidOperation   = errors.New("invalid operation")
	ErrUpstream           = errors.New("AI provider error")
	ErrUpstreamTimeout    = errors.New("AI provider timed out")
)
