package evaluator

import (
	"fmt"
	"strconv"

	"github.com/google/cel-go/cel"

	"github.com/shibukawa/truthtable/parser"
)

// Verify re-evaluates every sub-expression of t with CEL and compares the
// results row by row. It returns ErrVerificationFailed on the first mismatch.
func Verify(t *Table) error {
	envOptions := make([]cel.EnvOption, 0, len(t.Variables))
	for i := range t.Variables {
		envOptions = append(envOptions, cel.Variable(celVariable(i), cel.BoolType))
	}

	env, err := cel.NewEnv(envOptions...)
	if err != nil {
		return fmt.Errorf("failed to create CEL environment: %w", err)
	}

	programs := make([]cel.Program, len(t.SubExpressions))

	for i, sub := range t.SubExpressions {
		source, err := t.CELSource(sub.Column)
		if err != nil {
			return err
		}

		ast, issues := env.Compile(source)
		if issues != nil && issues.Err() != nil {
			return fmt.Errorf("CEL compilation error in column %d: %w", sub.Column, issues.Err())
		}

		program, err := env.Program(ast)
		if err != nil {
			return fmt.Errorf("failed to create CEL program for column %d: %w", sub.Column, err)
		}

		programs[i] = program
	}

	for r, row := range t.Rows {
		activation := make(map[string]any, len(row.Inputs))
		for i, input := range row.Inputs {
			activation[celVariable(i)] = input
		}

		for i, program := range programs {
			out, _, err := program.Eval(activation)
			if err != nil {
				return fmt.Errorf("CEL evaluation error in column %d: %w", t.SubExpressions[i].Column, err)
			}

			got, ok := out.Value().(bool)
			if !ok {
				return fmt.Errorf("%w: column %d evaluated to %v", ErrVerificationFailed, t.SubExpressions[i].Column, out.Value())
			}

			if got != row.Values[i] {
				return fmt.Errorf("%w: column %d row %d: table has %d, CEL has %d",
					ErrVerificationFailed, t.SubExpressions[i].Column, r+1, bit(row.Values[i]), bit(got))
			}
		}
	}

	return nil
}

// CELSource translates column into a CEL expression over v0..vN-1. A column
// without a NOT or binary node returns an *EvalError.
func (t *Table) CELSource(column int) (string, error) {
	if column < 1 || column > t.ColumnCount() {
		return "", &EvalError{Reason: fmt.Sprintf("column %d does not exist", column)}
	}

	if column <= len(t.Variables) {
		return celVariable(column - 1), nil
	}

	sub := t.SubExpressions[column-len(t.Variables)-1]

	operands := make([]string, len(sub.Operands))
	for i, operand := range sub.Operands {
		source, err := t.CELSource(operand)
		if err != nil {
			return "", err
		}

		operands[i] = source
	}

	switch n := sub.Node.(type) {
	case *parser.NotNode:
		if len(operands) == 1 {
			return "!(" + operands[0] + ")", nil
		}
	case *parser.BinaryNode:
		op, ok := celOperators[n.Op]
		if !ok {
			return "", &EvalError{Reason: fmt.Sprintf("unknown operator %s in column %d", n.Op, column)}
		}

		if len(operands) == 2 {
			return "(" + operands[0] + " " + op + " " + operands[1] + ")", nil
		}
	}

	return "", &EvalError{Reason: fmt.Sprintf("column %d has no operator", column)}
}

var celOperators = map[parser.Op]string{
	parser.And: "&&",
	parser.Xor: "!=",
	parser.Or:  "||",
}

// Variable names are not always valid CEL identifiers ("1", "α"), so they are
// replaced by positional names.
func celVariable(index int) string {
	return "v" + strconv.Itoa(index)
}

func bit(b bool) int {
	if b {
		return 1
	}

	return 0
}
