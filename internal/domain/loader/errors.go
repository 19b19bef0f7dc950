package loader

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNoHeader is returned when the input has no usable header row.
	ErrNoHeader = errors.New("input has no header row")
	// ErrUnreadable is returned when the input cannot be read at all.
	ErrUnreadable = errors.New("input is unreadable")
)
