package model

import "errors"

// ErrInvalidSubmission is returned when a submission fails validation.
var ErrInvalidSubmission = errors.New("invalid submission")
