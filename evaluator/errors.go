package evaluator

import "errors"

// Sentinel errors
var (
	// ErrMalformedTree indicates an expression tree that a successful parse cannot produce.
	ErrMalformedTree = errors.New("malformed expression tree")
	// ErrTableTooLarge indicates an expression whose rows cannot be enumerated.
	ErrTableTooLarge = errors.New("truth table too large")
	// ErrVerificationFailed indicates the CEL cross-check disagreed with the table.
	ErrVerificationFailed = errors.New("truth table verification failed")
)

// EvalError reports an internal inconsistency found while building a table.
type EvalError struct {
	Reason string
}

func (e *EvalError) Error() string {
	return ErrMalformedTree.Error() + ": " + e.Reason
}

func (e *EvalError) Unwrap() error {
	return ErrMalformedTree
}
