package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("not found")

	// ErrInvariant marks operations refused because they would break a store rule.
	ErrInvariant = errors.New("invariant violation")

	ErrDefaultCategory = fmt.Errorf("%w: cannot delete default category", ErrInvariant)
)

// NotFoundError reports which entity and id were missing. It matches ErrNotFound.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
