package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate indicates a unique constraint was violated, e.g. an email
	// already subscribed or an order number already taken.
	ErrDuplicate = errors.New("already exists")
)
