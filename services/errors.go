package services

import "errors"

var (
	// ErrNotFound means no record exists for the given key. Reads map it to
	// an "empty" response rather than an error.
	ErrNotFound = errors.New("record not found")

	// ErrMissingEmail rejects a mutating call without its key.
	ErrMissingEmail = errors.New("email is required")
)
