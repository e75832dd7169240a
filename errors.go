package truthtable

import "errors"

// Common errors used throughout the truthtable package
var (
	// ErrTooManyVariables is returned when an expression exceeds the configured variable limit.
	ErrTooManyVariables = errors.New("too many variables")
)
