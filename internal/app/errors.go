package service

import "errors"

// Sentinel error kinds for the service layer.
var (
	// ErrInProgress is returned when a repeated idempotency key refers to a
	// submission that has not finished saving yet.
	ErrInProgress = errors.New("submission in progress")
)
