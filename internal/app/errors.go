package app

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrInvalidRequest marks caller mistakes that must not be retried.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNotStarted is returned by Live before Start has wired a source.
	ErrNotStarted = errors.New("service not started")
)
