package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	// ErrNotFound is returned when a referenced event, registration, or
	// student does not exist.
	ErrNotFound = errors.New("not found")
)
