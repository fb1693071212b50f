package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no record
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when the email uniqueness constraint rejects an insert
	ErrDuplicateEmail = errors.New("email already registered")
)
