package evaluator

import (
	"fmt"

	"github.com/shibukawa/truthtable/parser"
)

// SubExpression is one numbered column of the result region.
type SubExpression struct {
	// Column is 1-based and counts the variable columns first.
	Column int
	// Display renders operands as variable names or [k] back-references.
	Display string
	// Operands are the columns this sub-expression reads, left to right.
	Operands []int
	Node     parser.Node
}

// TruthRow is one assignment of the variables and the value of every sub-expression.
type TruthRow struct {
	Inputs []bool // by variable index
	Values []bool // by sub-expression, in column order
}

// MaxVariables is the largest variable count Build enumerates. 2^24 rows
// already need gigabytes; larger tables cannot be allocated.
const MaxVariables = 24

// Table is the complete truth table of an expression.
type Table struct {
	Source         string
	Variables      []parser.Variable
	SubExpressions []SubExpression
	Rows           []TruthRow

	resultColumn int
}

// Build numbers every compound node of expr in post-order and evaluates all of
// them for each of the 2^N variable assignments. Row r assigns bit i of r to
// variable i, so the first declared variable toggles fastest.
//
// Cost is O(2^N * M) for N variables and M operators. Expressions with more
// than MaxVariables variables return ErrTableTooLarge before any row is
// allocated; callers that accept untrusted input should limit N further.
func Build(expr *parser.Expression) (*Table, error) {
	if expr == nil || expr.Symbols == nil {
		return nil, &EvalError{Reason: "expression has no symbol table"}
	}

	variables := expr.Variables()
	if len(variables) > MaxVariables {
		return nil, fmt.Errorf("%w: %d variables, at most %d can be enumerated", ErrTableTooLarge, len(variables), MaxVariables)
	}

	b := &builder{variables: variables}

	result, err := b.visit(expr.Root)
	if err != nil {
		return nil, err
	}

	table := &Table{
		Source:         expr.Source,
		Variables:      variables,
		SubExpressions: b.subs,
		resultColumn:   result.column,
	}

	if err := table.evaluate(); err != nil {
		return nil, err
	}

	return table, nil
}

// ColumnCount returns the number of value columns across both regions.
func (t *Table) ColumnCount() int {
	return len(t.Variables) + len(t.SubExpressions)
}

// ResultColumn returns the column holding the value of the whole expression.
// For an expression that is a single variable this is the variable's column.
func (t *Table) ResultColumn() int {
	return t.resultColumn
}

// Value returns the value of column in row.
func (t *Table) Value(row, column int) bool {
	r := t.Rows[row]
	if column <= len(t.Variables) {
		return r.Inputs[column-1]
	}

	return r.Values[column-len(t.Variables)-1]
}

// Result returns the value of the whole expression in row.
func (t *Table) Result(row int) bool {
	return t.Value(row, t.resultColumn)
}

// Header returns the display string of any column, variables included.
func (t *Table) Header(column int) string {
	if column <= len(t.Variables) {
		return t.Variables[column-1].Name
	}

	return t.SubExpressions[column-len(t.Variables)-1].Display
}

// Expand renders column with every [k] back-reference replaced by the
// parenthesized expansion of column k.
func (t *Table) Expand(column int) (string, error) {
	if column < 1 || column > t.ColumnCount() {
		return "", fmt.Errorf("%w: column %d out of range", ErrMalformedTree, column)
	}

	return t.expand(column), nil
}

func (t *Table) expand(column int) string {
	if column <= len(t.Variables) {
		return t.Variables[column-1].Name
	}

	sub := t.SubExpressions[column-len(t.Variables)-1]

	switch n := sub.Node.(type) {
	case *parser.NotNode:
		return "! " + t.expandOperand(sub.Operands[0])
	case *parser.BinaryNode:
		return t.expandOperand(sub.Operands[0]) + " " + n.Op.Symbol() + " " + t.expandOperand(sub.Operands[1])
	default:
		return sub.Display
	}
}

func (t *Table) expandOperand(column int) string {
	if column <= len(t.Variables) {
		return t.Variables[column-1].Name
	}

	return "(" + t.expand(column) + ")"
}

func (t *Table) evaluate() error {
	n := len(t.Variables)
	total := 1 << n
	t.Rows = make([]TruthRow, 0, total)

	for mask := range total {
		row := TruthRow{
			Inputs: make([]bool, n),
			Values: make([]bool, len(t.SubExpressions)),
		}

		for i := range n {
			row.Inputs[i] = mask>>i&1 == 1
		}

		operand := func(column int) bool {
			if column <= n {
				return row.Inputs[column-1]
			}

			return row.Values[column-n-1]
		}

		for i, sub := range t.SubExpressions {
			switch node := sub.Node.(type) {
			case *parser.NotNode:
				row.Values[i] = !operand(sub.Operands[0])
			case *parser.BinaryNode:
				value, ok := node.Op.Apply(operand(sub.Operands[0]), operand(sub.Operands[1]))
				if !ok {
					return &EvalError{Reason: fmt.Sprintf("unknown operator %s in column %d", node.Op, sub.Column)}
				}

				row.Values[i] = value
			default:
				return &EvalError{Reason: fmt.Sprintf("column %d has no operator", sub.Column)}
			}
		}

		t.Rows = append(t.Rows, row)
	}

	return nil
}

type builder struct {
	variables []parser.Variable
	subs      []SubExpression
}

// operandRef is how a parent refers to an already numbered child.
type operandRef struct {
	column  int
	display string
}

func (b *builder) visit(node parser.Node) (operandRef, error) {
	switch n := node.(type) {
	case *parser.VarNode:
		if n == nil || n.Index < 0 || n.Index >= len(b.variables) {
			return operandRef{}, &EvalError{Reason: "variable reference out of range"}
		}

		return operandRef{column: n.Index + 1, display: b.variables[n.Index].Name}, nil
	case *parser.NotNode:
		if n == nil {
			return operandRef{}, &EvalError{Reason: "nil negation"}
		}

		operand, err := b.visit(n.Operand)
		if err != nil {
			return operandRef{}, err
		}

		return b.add(n, "! "+operand.display, operand.column), nil
	case *parser.BinaryNode:
		if n == nil {
			return operandRef{}, &EvalError{Reason: "nil binary node"}
		}

		if _, ok := n.Op.Apply(false, false); !ok {
			return operandRef{}, &EvalError{Reason: fmt.Sprintf("unknown operator %s", n.Op)}
		}

		left, err := b.visit(n.Left)
		if err != nil {
			return operandRef{}, err
		}

		right, err := b.visit(n.Right)
		if err != nil {
			return operandRef{}, err
		}

		return b.add(n, left.display+" "+n.Op.Symbol()+" "+right.display, left.column, right.column), nil
	default:
		return operandRef{}, &EvalError{Reason: fmt.Sprintf("unsupported node %T", node)}
	}
}

// add numbers node after all of its operands.
func (b *builder) add(node parser.Node, display string, operands ...int) operandRef {
	column := len(b.variables) + len(b.subs) + 1
	b.subs = append(b.subs, SubExpression{
		Column:   column,
		Display:  display,
		Operands: operands,
		Node:     node,
	})

	return operandRef{column: column, display: fmt.Sprintf("[%d]", column)}
}
