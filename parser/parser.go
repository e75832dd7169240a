package parser

import (
	"github.com/shibukawa/truthtable/tokenizer"
)

// Expression is a parsed boolean expression together with its variables.
type Expression struct {
	Root    Node
	Symbols *SymbolTable
	Source  string
}

// Variables returns the expression's variables in declaration order.
func (e *Expression) Variables() []Variable {
	return e.Symbols.Variables()
}

// ParseString tokenizes and parses text. Tokenizer failures are returned as
// *tokenizer.LexError.
func ParseString(text string) (*Expression, error) {
	tokens, err := tokenizer.Tokenize(text)
	if err != nil {
		return nil, err
	}

	expr, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	expr.Source = text

	return expr, nil
}

// Parse builds an expression tree from tokens using the grammar
//
//	expr      := or_expr EOF
//	or_expr   := xor_expr ( '|' xor_expr )*
//	xor_expr  := and_expr ( '^' and_expr )*
//	and_expr  := factor   ( '&' factor )*
//	factor    := '!' factor | VAR | '(' or_expr ')'
//
// Binary operators are left-associative. A missing trailing EOF token is implied.
func Parse(tokens []tokenizer.Token) (*Expression, error) {
	p := &parser{tokens: tokens, symbols: NewSymbolTable()}

	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	return &Expression{Root: root, Symbols: p.symbols}, nil
}

type parser struct {
	tokens  []tokenizer.Token
	pos     int
	symbols *SymbolTable
}

func (p *parser) parseExpression() (Node, error) {
	if p.peek().Type == tokenizer.EOF {
		return nil, p.errorf(ErrEmptyExpression, "expression")
	}

	node, err := p.parseOr()
	if err != nil {
		return nil, err
	}

	switch p.peek().Type {
	case tokenizer.EOF:
		return node, nil
	case tokenizer.RPAREN:
		return nil, p.errorf(ErrUnmatchedParen, "EOF")
	default:
		return nil, p.errorf(ErrTrailingInput, "EOF")
	}
}

func (p *parser) parseOr() (Node, error) {
	return p.parseBinary(tokenizer.OR, Or, p.parseXor)
}

func (p *parser) parseXor() (Node, error) {
	return p.parseBinary(tokenizer.XOR, Xor, p.parseAnd)
}

func (p *parser) parseAnd() (Node, error) {
	return p.parseBinary(tokenizer.AND, And, p.parseFactor)
}

// parseBinary folds `operand (tokenType operand)*` to the left.
func (p *parser) parseBinary(tokenType tokenizer.TokenType, op Op, operand func() (Node, error)) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.peek().Type == tokenType {
		opToken := p.advance()

		right, err := operand()
		if err != nil {
			return nil, err
		}

		left = &BinaryNode{Op: op, Left: left, Right: right, Pos: opToken.Pos}
	}

	return left, nil
}

func (p *parser) parseFactor() (Node, error) {
	token := p.peek()

	switch token.Type {
	case tokenizer.NOT:
		p.advance()

		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		return &NotNode{Operand: operand, Pos: token.Pos}, nil
	case tokenizer.VAR:
		p.advance()

		return &VarNode{Index: p.symbols.Declare(token.Value), Name: token.Value, Pos: token.Pos}, nil
	case tokenizer.LPAREN:
		p.advance()

		node, err := p.parseOr()
		if err != nil {
			return nil, err
		}

		if p.peek().Type != tokenizer.RPAREN {
			return nil, p.errorf(ErrUnmatchedParen, tokenizer.RPAREN.Symbol())
		}

		p.advance()

		return node, nil
	default:
		return nil, p.errorf(ErrUnexpectedToken, "factor")
	}
}

func (p *parser) peek() tokenizer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}

	end := 0
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		end = last.Pos + len([]rune(last.Value))
	}

	return tokenizer.Token{Type: tokenizer.EOF, Pos: end}
}

func (p *parser) advance() tokenizer.Token {
	token := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}

	return token
}

func (p *parser) errorf(err error, expected string) *ParseError {
	found := p.peek()

	return &ParseError{Err: err, Expected: expected, Found: found.String(), Pos: found.Pos}
}
