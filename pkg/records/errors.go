package records

import "errors"

var (
	// ErrInvalidID is returned when a JSON identifier is neither a string nor a number.
	ErrInvalidID = errors.New("invalid identifier")
)
