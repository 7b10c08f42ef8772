package scoring

import "errors"

// ErrInvalidArgument is returned when a caller passes an argument outside
// its domain, such as a negative count.
var ErrInvalidArgument = errors.New("invalid argument")
