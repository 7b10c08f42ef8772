package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound    = errors.New("assessment not found")
	ErrDuplicateID = errors.New("assessment id already stored")
	ErrInvalidID   = errors.New("invalid assessment id")
)
