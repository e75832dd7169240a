package formatter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/shibukawa/truthtable/evaluator"
)

// TextFormatter draws the table as two boxes, variables on the left and
// sub-expressions on the right:
//
//	+---+ +-----+
//	| 1 | | 2   |
//	| a | | ! a |
//	+---+ +-----+
//	| 0 | |  1  |
//	| 1 | |  0  |
//	+---+ +-----+
type TextFormatter struct {
	opts Options
	one  func(a ...any) string
	zero func(a ...any) string
}

// NewTextFormatter creates a new TextFormatter
func NewTextFormatter(opts Options) *TextFormatter {
	f := &TextFormatter{opts: opts, one: fmt.Sprint, zero: fmt.Sprint}

	if opts.Color {
		one := color.New(color.FgGreen, color.Bold)
		one.EnableColor()

		zero := color.New(color.Faint)
		zero.EnableColor()

		f.one, f.zero = one.SprintFunc(), zero.SprintFunc()
	}

	return f
}

// Format writes the boxed table to w
func (f *TextFormatter) Format(w io.Writer, table *evaluator.Table) error {
	inputs, results := layout(table, f.opts.Brief)
	inputWidths := widths(inputs)
	resultWidths := widths(results)

	bw := bufio.NewWriter(w)
	border := borderLine(inputWidths, resultWidths)

	bw.WriteString(border)

	bw.WriteString(headerLine(inputs, inputWidths, results, resultWidths, func(c column) string {
		return strconv.Itoa(c.number)
	}))
	bw.WriteString(headerLine(inputs, inputWidths, results, resultWidths, func(c column) string {
		return c.header
	}))

	bw.WriteString(border)

	for r := range table.Rows {
		var sb strings.Builder

		sb.WriteString("|")
		f.writeValues(&sb, table, r, inputs, inputWidths)
		sb.WriteString(" |")
		f.writeValues(&sb, table, r, results, resultWidths)
		sb.WriteString("\n")

		bw.WriteString(sb.String())
	}

	bw.WriteString(border)

	return bw.Flush()
}

func (f *TextFormatter) writeValues(sb *strings.Builder, table *evaluator.Table, row int, columns []column, widths []int) {
	for i, c := range columns {
		value := table.Value(row, c.source)

		paint := f.zero
		if value {
			paint = f.one
		}

		pad := widths[i] - 1
		left := pad / 2

		sb.WriteString(" ")
		sb.WriteString(strings.Repeat(" ", left))
		sb.WriteString(paint(bit(value)))
		sb.WriteString(strings.Repeat(" ", pad-left))
		sb.WriteString(" |")
	}
}

func widths(columns []column) []int {
	result := make([]int, len(columns))
	for i, c := range columns {
		result[i] = max(runewidth.StringWidth(strconv.Itoa(c.number)), runewidth.StringWidth(c.header))
	}

	return result
}

func borderLine(inputWidths, resultWidths []int) string {
	return "+-" + dashes(inputWidths) + "-+ +-" + dashes(resultWidths) + "-+\n"
}

func dashes(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}

	return strings.Join(parts, "-+-")
}

func headerLine(inputs []column, inputWidths []int, results []column, resultWidths []int, cell func(column) string) string {
	var sb strings.Builder

	sb.WriteString("|")
	writeLeft(&sb, inputs, inputWidths, cell)
	sb.WriteString(" |")
	writeLeft(&sb, results, resultWidths, cell)
	sb.WriteString("\n")

	return sb.String()
}

func writeLeft(sb *strings.Builder, columns []column, widths []int, cell func(column) string) {
	for i, c := range columns {
		text := cell(c)

		sb.WriteString(" ")
		sb.WriteString(text)
		sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(text)))
		sb.WriteString(" |")
	}
}
