package render

import "errors"

// Sentinel error kinds for renderer failures.
var (
	// ErrRender wraps any failure while serializing the document tree.
	ErrRender = errors.New("render failed")
	// ErrMissingImage is returned when a referenced image cannot be read.
	ErrMissingImage = errors.New("image resource not readable")
)
