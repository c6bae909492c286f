package store

import "errors"

// Predefined errors for the store layer.
var (
	// ErrNotFound indicates that a requested record does not exist.
	ErrNotFound = errors.New("resource not found")
)
