package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized indicates missing or wrong credentials (HTTP 401).
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but lacks the role (HTTP 403).
var ErrForbidden = errors.New("forbidden")

// Verification outcomes exposed as errors for callers that prefer error flow.
var (
	ErrAlreadyCollected = errors.New("parcel already collected")
	ErrLockedOut        = errors.New("parcel locked")
	ErrIncorrectCode    = errors.New("incorrect security code")
)
