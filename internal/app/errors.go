package service

import "errors"

// Sentinel error kinds for the pipeline orchestrator.
var (
	// ErrNoEvents signals an empty event sequence. Non-fatal: it accompanies
	// a valid all-zero report and callers may treat it as a warning.
	ErrNoEvents = errors.New("no shot events loaded")
)
