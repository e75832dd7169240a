package formatter

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/shibukawa/truthtable/evaluator"
)

// MarkdownFormatter writes the table as a GitHub flavored Markdown table.
// Headers read "n: display"; pipes inside display strings are escaped.
type MarkdownFormatter struct {
	opts Options
}

// Format writes the Markdown table to w
func (f *MarkdownFormatter) Format(w io.Writer, table *evaluator.Table) error {
	inputs, results := layout(table, f.opts.Brief)
	columns := append(inputs, results...)

	headers := make([]string, len(columns))
	cellWidths := make([]int, len(columns))

	for i, c := range columns {
		headers[i] = strconv.Itoa(c.number) + ": " + strings.ReplaceAll(c.header, "|", `\|`)
		cellWidths[i] = max(runewidth.StringWidth(headers[i]), 3)
	}

	bw := bufio.NewWriter(w)

	bw.WriteString(markdownRow(headers, cellWidths))

	separators := make([]string, len(columns))
	for i, width := range cellWidths {
		separators[i] = ":" + strings.Repeat("-", width-2) + ":"
	}

	bw.WriteString(markdownRow(separators, cellWidths))

	for r := range table.Rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = bit(table.Value(r, c.source))
		}

		bw.WriteString(markdownRow(cells, cellWidths))
	}

	return bw.Flush()
}

func markdownRow(cells []string, cellWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for i, cell := range cells {
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(cell, cellWidths[i]))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")

	return sb.String()
}
