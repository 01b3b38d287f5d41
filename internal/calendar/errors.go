package calendar

import "errors"

// Sentinel error kinds for this package. Callers match with errors.Is.
var (
	// ErrInvalidRange is returned when a window or date range has end
	// before start. Ranges are never silently swapped.
	ErrInvalidRange = errors.New("invalid range: end before start")

	// ErrUnknownRegion is returned when a region code outside the
	// supported set is supplied.
	ErrUnknownRegion = errors.New("unknown region")
)
