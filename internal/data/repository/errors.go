package repository

import "errors"

var (
	// ErrNotFound signals the referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists signals a uniqueness invariant would be violated.
	ErrAlreadyExists = errors.New("record already exists")
)
