package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shibukawa/truthtable/tokenizer"
)

func v(name string, index int) *VarNode {
	return &VarNode{Name: name, Index: index}
}

func not(operand Node) *NotNode {
	return &NotNode{Operand: operand}
}

func bin(op Op, left, right Node) *BinaryNode {
	return &BinaryNode{Op: op, Left: left, Right: right}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Node
		variables []string
	}{
		{
			name:      "single variable",
			input:     "a",
			want:      v("a", 0),
			variables: []string{"a"},
		},
		{
			name:      "not",
			input:     "!a",
			want:      not(v("a", 0)),
			variables: []string{"a"},
		},
		{
			name:      "double not",
			input:     "!!a",
			want:      not(not(v("a", 0))),
			variables: []string{"a"},
		},
		{
			name:      "and binds tighter than or",
			input:     "a & b | !a",
			want:      bin(Or, bin(And, v("a", 0), v("b", 1)), not(v("a", 0))),
			variables: []string{"a", "b"},
		},
		{
			name:      "and binds tighter than xor",
			input:     "a ^ b & c",
			want:      bin(Xor, v("a", 0), bin(And, v("b", 1), v("c", 2))),
			variables: []string{"a", "b", "c"},
		},
		{
			name:      "xor binds tighter than or",
			input:     "a | b ^ c",
			want:      bin(Or, v("a", 0), bin(Xor, v("b", 1), v("c", 2))),
			variables: []string{"a", "b", "c"},
		},
		{
			name:      "or is left associative",
			input:     "a | b | c",
			want:      bin(Or, bin(Or, v("a", 0), v("b", 1)), v("c", 2)),
			variables: []string{"a", "b", "c"},
		},
		{
			name:      "xor is left associative",
			input:     "a ^ b ^ c",
			want:      bin(Xor, bin(Xor, v("a", 0), v("b", 1)), v("c", 2)),
			variables: []string{"a", "b", "c"},
		},
		{
			name:      "parentheses",
			input:     "a & (b | !a)",
			want:      bin(And, v("a", 0), bin(Or, v("b", 1), not(v("a", 0)))),
			variables: []string{"a", "b"},
		},
		{
			name:      "not binds tighter than and",
			input:     "!a & b",
			want:      bin(And, not(v("a", 0)), v("b", 1)),
			variables: []string{"a", "b"},
		},
		{
			name:      "not of parenthesized expression",
			input:     "!(a | b)",
			want:      not(bin(Or, v("a", 0), v("b", 1))),
			variables: []string{"a", "b"},
		},
		{
			name:      "first occurrence order",
			input:     "z & y | x & z",
			want:      bin(Or, bin(And, v("z", 0), v("y", 1)), bin(And, v("x", 2), v("z", 0))),
			variables: []string{"z", "y", "x"},
		},
		{
			name:      "exit is a variable inside an expression",
			input:     "exit | a1",
			want:      bin(Or, v("exit", 0), v("a1", 1)),
			variables: []string{"exit", "a1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(tt.input)
			require.NoError(t, err)

			assert.True(t, Equal(tt.want, expr.Root), "want %s, got %s", tt.want, expr.Root)
			assert.Equal(t, tt.input, expr.Source)

			var names []string
			for i, variable := range expr.Variables() {
				assert.Equal(t, i, variable.Index)
				names = append(names, variable.Name)
			}
			assert.Equal(t, tt.variables, names)
		})
	}
}

func TestParse_VariableIndexReuse(t *testing.T) {
	expr, err := ParseString("a & (b | !a)")
	require.NoError(t, err)

	root := expr.Root.(*BinaryNode)
	first := root.Left.(*VarNode)
	second := root.Right.(*BinaryNode).Right.(*NotNode).Operand.(*VarNode)

	assert.Equal(t, 0, first.Index)
	assert.Equal(t, 0, second.Index)
	assert.Equal(t, 1, root.Right.(*BinaryNode).Left.(*VarNode).Index)
	assert.Equal(t, 2, expr.Symbols.Len())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sentinel error
		expected string
		found    string
		pos      int
	}{
		{name: "empty input", input: "", sentinel: ErrEmptyExpression, expected: "expression", found: "EOF", pos: 0},
		{name: "blank input", input: "   ", sentinel: ErrEmptyExpression, expected: "expression", found: "EOF", pos: 3},
		{name: "unclosed paren", input: "(a", sentinel: ErrUnmatchedParen, expected: ")", found: "EOF", pos: 2},
		{name: "unclosed paren before variable", input: "(a b", sentinel: ErrUnmatchedParen, expected: ")", found: "b", pos: 3},
		{name: "stray closing paren", input: "a)", sentinel: ErrUnmatchedParen, expected: "EOF", found: ")", pos: 1},
		{name: "missing right operand", input: "a&", sentinel: ErrUnexpectedToken, expected: "factor", found: "EOF", pos: 2},
		{name: "missing left operand", input: "| a", sentinel: ErrUnexpectedToken, expected: "factor", found: "|", pos: 0},
		{name: "empty parens", input: "()", sentinel: ErrUnexpectedToken, expected: "factor", found: ")", pos: 1},
		{name: "dangling not", input: "a & !", sentinel: ErrUnexpectedToken, expected: "factor", found: "EOF", pos: 5},
		{name: "two variables", input: "a b", sentinel: ErrTrailingInput, expected: "EOF", found: "b", pos: 2},
		{name: "trailing open paren", input: "a (b)", sentinel: ErrTrailingInput, expected: "EOF", found: "(", pos: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseString(tt.input)
			assert.Nil(t, expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.expected, parseErr.Expected)
			assert.Equal(t, tt.found, parseErr.Found)
			assert.Equal(t, tt.pos, parseErr.Pos)
		})
	}
}

func TestParse_LexErrorPassesThrough(t *testing.T) {
	_, err := ParseString("a$b")

	assert.ErrorIs(t, err, tokenizer.ErrInvalidCharacter)

	var parseErr *ParseError
	assert.False(t, errors.As(err, &parseErr))
}

func TestParse_ImpliedEOF(t *testing.T) {
	tokens := []tokenizer.Token{
		{Type: tokenizer.VAR, Value: "a", Pos: 0},
		{Type: tokenizer.AND, Value: "&", Pos: 1},
		{Type: tokenizer.VAR, Value: "bb", Pos: 2},
	}

	expr, err := Parse(tokens)
	require.NoError(t, err)
	assert.Equal(t, "(a & bb)", expr.Root.String())

	_, err = Parse(tokens[:2])
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Pos)
}

func TestParseErrorMessage(t *testing.T) {
	_, err := ParseString("(a")
	assert.EqualError(t, err, "unmatched parenthesis: expected `)`, found `EOF` at position 3")
}

func TestNodeString(t *testing.T) {
	expr, err := ParseString("!(a | b) ^ !!c & a")
	require.NoError(t, err)
	assert.Equal(t, "(!(a | b) ^ (!!c & a))", expr.Root.String())

	reparsed, err := ParseString(expr.Root.String())
	require.NoError(t, err)
	assert.True(t, Equal(expr.Root, reparsed.Root))
}

func TestCountOperators(t *testing.T) {
	tests := map[string]int{
		"a":            0,
		"!a":           1,
		"!!a":          2,
		"a & b | !a":   3,
		"a & (b | !a)": 3,
		"(a)":          0,
	}

	for input, want := range tests {
		expr, err := ParseString(input)
		require.NoError(t, err)
		assert.Equal(t, want, CountOperators(expr.Root), input)
	}
}

func TestOpApply(t *testing.T) {
	for _, l := range []bool{false, true} {
		for _, r := range []bool{false, true} {
			got, ok := And.Apply(l, r)
			assert.True(t, ok)
			assert.Equal(t, l && r, got)

			got, ok = Xor.Apply(l, r)
			assert.True(t, ok)
			assert.Equal(t, l != r, got)

			got, ok = Or.Apply(l, r)
			assert.True(t, ok)
			assert.Equal(t, l || r, got)
		}
	}

	_, ok := Op(42).Apply(true, true)
	assert.False(t, ok)
}
