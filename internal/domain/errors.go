package domain

import "errors"

// Sentinel errors for the circulation engine. Services wrap these with
// context via fmt.Errorf("...: %w", Err...), callers match with errors.Is.
var (
	// ErrNotFound is returned when an entity id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument is returned for malformed input such as
	// non-positive amounts or day counts.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState is returned when a lifecycle precondition is not
	// met, e.g. renewing an overdue loan or reserving an available book.
	ErrIllegalState = errors.New("illegal state transition")
)
