package storage

import "errors"

// Common storage errors
var (
	// ErrNotFound indicates that the flashcard does not exist for this user
	ErrNotFound = errors.New("flashcard not found")

	// ErrSchemaMissing indicates that the flashcards table does not exist
	ErrSchemaMissing = errors.New("flashcards table does not exist")

	// ErrInvalidUser indicates an empty owner identifier
	ErrInvalidUser = errors.New("user id is required")
)
