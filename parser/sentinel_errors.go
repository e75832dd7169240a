package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors for grammar violations
var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnmatchedParen  = errors.New("unmatched parenthesis")
	ErrTrailingInput   = errors.New("unexpected input after expression")
)

// ParseError describes where parsing stopped and what the grammar expected there.
// It unwraps to one of the sentinel errors above.
type ParseError struct {
	Err      error
	Expected string
	Found    string
	Pos      int // 0-based rune offset of the offending token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: expected `%s`, found `%s` at position %d", e.Err, e.Expected, e.Found, e.Pos+1)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
