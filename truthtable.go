// Package truthtable computes truth tables of boolean expressions built from
// variables and the operators | (OR), ^ (XOR), & (AND), ! (NOT) and parentheses.
//
// Every compound sub-expression gets its own numbered column, so the table shows
// how the final value is assembled:
//
//	table, err := truthtable.Compute("a & (b | !a)")
//	if err != nil {
//		return err
//	}
//	for _, sub := range table.SubExpressions {
//		fmt.Println(sub.Column, sub.Display) // 3 ! a, 4 b | [3], 5 a & [4]
//	}
package truthtable

import (
	"fmt"

	"github.com/shibukawa/truthtable/evaluator"
	"github.com/shibukawa/truthtable/parser"
)

// MaxEnumerableVariables is the largest variable count a table can be built for
const MaxEnumerableVariables = evaluator.MaxVariables

// Compute tokenizes, parses and evaluates text. Errors are returned unchanged:
// *tokenizer.LexError, *parser.ParseError or *evaluator.EvalError.
// The table has 2^N rows for N variables; use ComputeWithLimit for untrusted input.
func Compute(text string) (*evaluator.Table, error) {
	return ComputeWithLimit(text, 0)
}

// ComputeWithLimit is Compute that refuses expressions with more than
// maxVariables distinct variables before any row is built. 0 means up to
// MaxEnumerableVariables.
func ComputeWithLimit(text string, maxVariables int) (*evaluator.Table, error) {
	expr, err := parser.ParseString(text)
	if err != nil {
		return nil, err
	}

	if maxVariables <= 0 || maxVariables > MaxEnumerableVariables {
		maxVariables = MaxEnumerableVariables
	}

	if n := expr.Symbols.Len(); n > maxVariables {
		return nil, fmt.Errorf("%w: expression has %d variables, limit is %d", ErrTooManyVariables, n, maxVariables)
	}

	return evaluator.Build(expr)
}
