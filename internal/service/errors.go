package service

import "errors"

// ValidationError marks a rejected input. The API layer answers these with
// 400 and the message verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrMissingFields  = ValidationError("missing required fields")
	ErrNameRequired   = ValidationError("name is required")
	ErrInvalidID      = ValidationError("invalid ID")
	ErrInvalidCuisine = ValidationError("invalid cuisine ID")
	ErrInvalidTags    = ValidationError("one or more tag IDs are invalid")
)

var (
	ErrNotFound       = errors.New("not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("invalid credentials")
	ErrForbidden      = errors.New("not allowed to modify this recipe")
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrUnknownSubject = errors.New("token subject no longer exists")
)
