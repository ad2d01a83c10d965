package registry

import "errors"

var (
	// ErrInvalidConfig is returned when the registry configuration is out of range.
	ErrInvalidConfig = errors.New("invalid registry configuration")

	// ErrUnknownTimezone is returned when the configured timezone cannot be loaded.
	ErrUnknownTimezone = errors.New("unknown timezone")
)
