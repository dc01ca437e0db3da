package storage

import "errors"

var (
	// ErrNotFound indicates the requested blob does not exist.
	ErrNotFound = errors.New("blob not found")
	// ErrEmptyKey indicates an empty storage key was provided.
	ErrEmptyKey = errors.New("storage key must not be empty")
	// ErrInvalidKey indicates the storage key contains a path traversal segment.
	ErrInvalidKey = errors.New("storage key contains invalid path segment")
	// ErrTooLarge indicates the blob exceeds the configured download limit.
	ErrTooLarge = errors.New("blob exceeds maximum download size")
	// ErrNotConfigured indicates neither a connection string nor an account URL is set.
	ErrNotConfigured = errors.New("storage account not configured")
)
