package workflow

import "errors"

var (
	// ErrInvalidTransition is returned when a status transition is not allowed
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrInvalidState is returned when a state is not a valid claim status
	ErrInvalidState = errors.New("invalid state")
)
