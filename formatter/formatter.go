// Package formatter renders truth tables for terminals and files.
package formatter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shibukawa/truthtable/evaluator"
)

// ErrUnknownFormat is returned by New for an unsupported format name
var ErrUnknownFormat = errors.New("unknown output format")

// DefaultFormat is the boxed text table
const DefaultFormat = "text"

// Options controls what a formatter writes
type Options struct {
	// Brief replaces the sub-expression columns with a single [result] column.
	Brief bool
	// Color highlights 1 and 0 values (text format only).
	Color bool
}

// Formatter writes a table to w
type Formatter interface {
	Format(w io.Writer, table *evaluator.Table) error
}

// Names returns the supported format names
func Names() []string {
	return []string{"text", "markdown", "csv", "json", "yaml", "xml"}
}

// New returns the formatter registered under name
func New(name string, opts Options) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(opts), nil
	case "markdown":
		return &MarkdownFormatter{opts: opts}, nil
	case "csv":
		return &CSVFormatter{opts: opts}, nil
	case "json":
		return &JSONFormatter{opts: opts}, nil
	case "yaml":
		return &YAMLFormatter{opts: opts}, nil
	case "xml":
		return &XMLFormatter{opts: opts}, nil
	default:
		return nil, fmt.Errorf("%w '%s': must be one of %s", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
}

// column is one displayed column. source is the table column its values come from.
type column struct {
	number int
	header string
	source int
}

// layout splits the displayed columns into the variable region and the result region.
// An expression without operators repeats its variables in the result region so
// that there is always something to read the result from.
func layout(table *evaluator.Table, brief bool) (inputs, results []column) {
	n := len(table.Variables)

	for i, v := range table.Variables {
		inputs = append(inputs, column{number: i + 1, header: v.Name, source: i + 1})
	}

	switch {
	case brief:
		results = []column{{number: n + 1, header: "[result]", source: table.ResultColumn()}}
	case len(table.SubExpressions) == 0:
		for _, in := range inputs {
			results = append(results, column{number: in.number + n, header: in.header, source: in.source})
		}
	default:
		for _, sub := range table.SubExpressions {
			results = append(results, column{number: sub.Column, header: sub.Display, source: sub.Column})
		}
	}

	return inputs, results
}

func bit(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
