package apperrors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrStorage marks the backing store as unreachable or failing.
	ErrStorage = errors.New("storage unavailable")
	// ErrGeneration marks a failed call to the generation backend.
	// Callers may retry these.
	ErrGeneration = errors.New("generation failed")
	// ErrBadResponse marks a generation response that could not be parsed
	// as JSON. Retrying the same prompt is unlikely to help.
	ErrBadResponse = errors.New("malformed generation response")
)
