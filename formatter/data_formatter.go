package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/shibukawa/truthtable/evaluator"
)

// Document is the structured form written by the json, yaml and xml formats
type Document struct {
	Expression     string           `json:"expression" yaml:"expression"`
	Variables      []string         `json:"variables" yaml:"variables"`
	Columns        []DocumentColumn `json:"columns" yaml:"columns"`
	ResultColumn   int              `json:"result_column" yaml:"result_column"`
	Classification string           `json:"classification" yaml:"classification"`
	Rows           []DocumentRow    `json:"rows" yaml:"rows"`
}

// DocumentColumn describes one result-region column
type DocumentColumn struct {
	Column   int    `json:"column" yaml:"column"`
	Display  string `json:"display" yaml:"display"`
	Expanded string `json:"expanded,omitempty" yaml:"expanded,omitempty"`
	Operands []int  `json:"operands,omitempty" yaml:"operands,omitempty"`
}

// DocumentRow holds 0/1 inputs by variable and 0/1 values by column
type DocumentRow struct {
	Inputs []int `json:"inputs" yaml:"inputs,flow"`
	Values []int `json:"values" yaml:"values,flow"`
}

// NewDocument converts a table into its structured form
func NewDocument(table *evaluator.Table, brief bool) *Document {
	inputs, results := layout(table, brief)

	doc := &Document{
		Expression:     table.Source,
		Variables:      make([]string, 0, len(inputs)),
		Columns:        make([]DocumentColumn, 0, len(results)),
		ResultColumn:   table.ResultColumn(),
		Classification: table.Classify().String(),
		Rows:           make([]DocumentRow, 0, len(table.Rows)),
	}

	for _, in := range inputs {
		doc.Variables = append(doc.Variables, in.header)
	}

	subs := make(map[int]evaluator.SubExpression, len(table.SubExpressions))
	for _, sub := range table.SubExpressions {
		subs[sub.Column] = sub
	}

	for _, c := range results {
		col := DocumentColumn{Column: c.number, Display: c.header}
		if sub, ok := subs[c.number]; ok && !brief {
			col.Operands = sub.Operands
			col.Expanded, _ = table.Expand(sub.Column)
		}

		doc.Columns = append(doc.Columns, col)
	}

	for r := range table.Rows {
		row := DocumentRow{
			Inputs: make([]int, 0, len(inputs)),
			Values: make([]int, 0, len(results)),
		}

		for _, in := range inputs {
			row.Inputs = append(row.Inputs, boolInt(table.Value(r, in.source)))
		}

		for _, c := range results {
			row.Values = append(row.Values, boolInt(table.Value(r, c.source)))
		}

		doc.Rows = append(doc.Rows, row)
	}

	return doc
}

// JSONFormatter writes an indented Document
type JSONFormatter struct {
	opts Options
}

// Format writes the JSON document to w
func (f *JSONFormatter) Format(w io.Writer, table *evaluator.Table) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(NewDocument(table, f.opts.Brief)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// YAMLFormatter writes a Document as YAML
type YAMLFormatter struct {
	opts Options
}

// Format writes the YAML document to w
func (f *YAMLFormatter) Format(w io.Writer, table *evaluator.Table) error {
	data, err := yaml.Marshal(NewDocument(table, f.opts.Brief))
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	_, err = w.Write(data)

	return err
}

// CSVFormatter writes a header of column displays followed by 0/1 rows
type CSVFormatter struct {
	opts Options
}

// Format writes the CSV table to w
func (f *CSVFormatter) Format(w io.Writer, table *evaluator.Table) error {
	inputs, results := layout(table, f.opts.Brief)
	columns := append(inputs, results...)

	writer := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.header
	}

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for r := range table.Rows {
		record := make([]string, len(columns))
		for i, c := range columns {
			record[i] = bit(table.Value(r, c.source))
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()

	return writer.Error()
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
