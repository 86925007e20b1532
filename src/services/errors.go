package services

import "errors"

// Sentinel errors for explicit error handling. Handlers match these with
// errors.Is and map them onto the HTTP taxonomy; everything else is an
// internal error whose text is logged but never echoed to the caller.

var (
	// ErrNotFound indicates the id matched no row
	ErrNotFound = errors.New("not found")

	// ErrMissingFields indicates a required field was absent or empty
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidCredentials indicates login failed
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMissingQuery indicates the raw query body had no query text
	ErrMissingQuery = errors.New("query is required")
)
