package tokenizer

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrInvalidCharacter = errors.New("invalid character")
)

// TokenType represents the type of a token
type TokenType int

const (
	EOF    TokenType = iota
	VAR              // variable name: maximal run of letters and digits
	OR               // |
	XOR              // ^
	AND              // &
	NOT              // !
	LPAREN           // (
	RPAREN           // )
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case VAR:
		return "VAR"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case AND:
		return "AND"
	case NOT:
		return "NOT"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Symbol returns the source character of an operator or parenthesis token type.
// VAR and EOF have no fixed symbol and return their type name.
func (t TokenType) Symbol() string {
	switch t {
	case OR:
		return "|"
	case XOR:
		return "^"
	case AND:
		return "&"
	case NOT:
		return "!"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	default:
		return t.String()
	}
}

// Token represents a single lexical unit of a boolean expression
type Token struct {
	Type  TokenType
	Value string // variable name for VAR, operator character otherwise, empty for EOF
	Pos   int    // 0-based rune offset of the first character
}

// String returns a human readable form used in error messages
func (t Token) String() string {
	switch t.Type {
	case VAR:
		return t.Value
	case EOF:
		return "EOF"
	default:
		return t.Type.Symbol()
	}
}

// LexError reports a character that cannot start any token.
type LexError struct {
	Char rune
	Pos  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s `%c` at position %d", ErrInvalidCharacter, e.Char, e.Pos+1)
}

func (e *LexError) Unwrap() error {
	return ErrInvalidCharacter
}
