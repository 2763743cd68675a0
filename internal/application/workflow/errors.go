package workflow

import "errors"

var (
	// ErrValidation is returned when caller-supplied input violates a
	// precondition. Nothing is mutated.
	ErrValidation = errors.New("validation failed")

	// ErrStateConflict is returned when a transition is attempted from a
	// status that does not permit it. Nothing is mutated.
	ErrStateConflict = errors.New("state conflict")
)
