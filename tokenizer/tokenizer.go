package tokenizer

import (
	"iter"
	"unicode"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq2[Token, error]

// Tokenizer splits a boolean expression into tokens
type Tokenizer struct {
	input string
}

// NewTokenizer creates a new Tokenizer
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokens returns an iterator of tokens. The sequence ends after the EOF token
// or after the first error.
func (t *Tokenizer) Tokens() TokenIterator {
	return func(yield func(Token, error) bool) {
		lexer := &lexer{src: []rune(t.input)}

		for {
			token, err := lexer.nextToken()
			if err != nil {
				yield(Token{}, err)
				return
			}

			if !yield(token, nil) {
				return
			}

			if token.Type == EOF {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, EOF included
func (t *Tokenizer) AllTokens() ([]Token, error) {
	tokens := make([]Token, 0, len(t.input)+1)

	for token, err := range t.Tokens() {
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
	}

	return tokens, nil
}

// Tokenize converts expression text into tokens terminated by EOF.
// It fails with *LexError on the first character that is not whitespace,
// an operator, a parenthesis or alphanumeric.
func Tokenize(input string) ([]Token, error) {
	return NewTokenizer(input).AllTokens()
}

// Internal lexer implementation
type lexer struct {
	src []rune
	pos int
}

func (l *lexer) nextToken() (Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.src) {
		return Token{Type: EOF, Pos: l.pos}, nil
	}

	start := l.pos
	c := l.src[l.pos]

	if typ, ok := singleCharTokens[c]; ok {
		l.pos++
		return Token{Type: typ, Value: string(c), Pos: start}, nil
	}

	if isVarChar(c) {
		for l.pos < len(l.src) && isVarChar(l.src[l.pos]) {
			l.pos++
		}

		return Token{Type: VAR, Value: string(l.src[start:l.pos]), Pos: start}, nil
	}

	return Token{}, &LexError{Char: c, Pos: start}
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.src[l.pos]) {
		l.pos++
	}
}

var singleCharTokens = map[rune]TokenType{
	'|': OR,
	'^': XOR,
	'&': AND,
	'!': NOT,
	'(': LPAREN,
	')': RPAREN,
}

func isVarChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
