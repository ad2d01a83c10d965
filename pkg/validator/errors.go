package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidDate is returned when a value cannot be parsed as a calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime is returned when a value cannot be parsed as a clock time.
	ErrInvalidTime = errors.New("invalid time")
)
