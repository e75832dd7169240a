package formatter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/beevik/etree"
	"github.com/goccy/go-yaml"

	"github.com/shibukawa/truthtable/evaluator"
	"github.com/shibukawa/truthtable/parser"
	"github.com/shibukawa/truthtable/testhelper"
)

func build(t *testing.T, input string) *evaluator.Table {
	t.Helper()

	expr, err := parser.ParseString(input)
	assert.NoError(t, err)

	table, err := evaluator.Build(expr)
	assert.NoError(t, err)

	return table
}

func render(t *testing.T, name string, opts Options, input string) string {
	t.Helper()

	f, err := New(name, opts)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, f.Format(&buf, build(t, input)))

	return buf.String()
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		opts     Options
		expected string
	}{
		{
			name:  "negation",
			input: "!a",
			expected: `
				+---+ +-----+
				| 1 | | 2   |
				| a | | ! a |
				+---+ +-----+
				| 0 | |  1  |
				| 1 | |  0  |
				+---+ +-----+
			`,
		},
		{
			name:  "parenthesized group",
			input: "a & (b | !a)",
			expected: `
				+---+---+ +-----+---------+---------+
				| 1 | 2 | | 3   | 4       | 5       |
				| a | b | | ! a | b | [3] | a & [4] |
				+---+---+ +-----+---------+---------+
				| 0 | 0 | |  1  |    1    |    0    |
				| 1 | 0 | |  0  |    0    |    0    |
				| 0 | 1 | |  1  |    1    |    0    |
				| 1 | 1 | |  0  |    1    |    1    |
				+---+---+ +-----+---------+---------+
			`,
		},
		{
			name:  "precedence",
			input: "a & b | !a",
			expected: `
				+---+---+ +-------+-----+-----------+
				| 1 | 2 | | 3     | 4   | 5         |
				| a | b | | a & b | ! a | [3] | [4] |
				+---+---+ +-------+-----+-----------+
				| 0 | 0 | |   0   |  1  |     1     |
				| 1 | 0 | |   0   |  0  |     0     |
				| 0 | 1 | |   0   |  1  |     1     |
				| 1 | 1 | |   1   |  0  |     1     |
				+---+---+ +-------+-----+-----------+
			`,
		},
		{
			name:  "brief",
			input: "a & b | !a",
			opts:  Options{Brief: true},
			expected: `
				+---+---+ +----------+
				| 1 | 2 | | 3        |
				| a | b | | [result] |
				+---+---+ +----------+
				| 0 | 0 | |    1     |
				| 1 | 0 | |    0     |
				| 0 | 1 | |    1     |
				| 1 | 1 | |    1     |
				+---+---+ +----------+
			`,
		},
		{
			name:  "single variable repeats in result region",
			input: "a",
			expected: `
				+---+ +---+
				| 1 | | 2 |
				| a | | a |
				+---+ +---+
				| 0 | | 0 |
				| 1 | | 1 |
				+---+ +---+
			`,
		},
		{
			name:  "long variable names",
			input: "alpha ^ b",
			expected: `
				+-------+---+ +-----------+
				| 1     | 2 | | 3         |
				| alpha | b | | alpha ^ b |
				+-------+---+ +-----------+
				|   0   | 0 | |     0     |
				|   1   | 0 | |     1     |
				|   0   | 1 | |     1     |
				|   1   | 1 | |     0     |
				+-------+---+ +-----------+
			`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := testhelper.TrimIndent(t, tt.expected)
			assert.Equal(t, expected, render(t, "text", tt.opts, tt.input))
		})
	}
}

func TestTextFormatter_WideNumbers(t *testing.T) {
	output := render(t, "text", Options{}, "!!!!!!!!!!a")
	lines := strings.Split(output, "\n")

	assert.Equal(t, "| 1 | | 2   | 3     | 4     | 5     | 6     | 7     | 8     | 9     | 10    | 11     |", lines[1])
}

func TestTextFormatter_Color(t *testing.T) {
	plain := render(t, "text", Options{}, "a & (b | !a)")
	colored := render(t, "text", Options{Color: true}, "a & (b | !a)")

	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, plain, testhelper.StripANSI(colored))
}

func TestMarkdownFormatter(t *testing.T) {
	expected := testhelper.TrimIndent(t, `
		| 1: a | 2: b | 3: a \| b |
		| :--: | :--: | :-------: |
		| 0    | 0    | 0         |
		| 1    | 0    | 1         |
		| 0    | 1    | 1         |
		| 1    | 1    | 1         |
	`)

	assert.Equal(t, expected, render(t, "markdown", Options{}, "a | b"))
}

func TestCSVFormatter(t *testing.T) {
	expected := "a,b,a ^ b\n0,0,0\n1,0,1\n0,1,1\n1,1,0\n"
	assert.Equal(t, expected, render(t, "csv", Options{}, "a ^ b"))

	expected = "a,b,[result]\n0,0,0\n1,0,0\n0,1,0\n1,1,1\n"
	assert.Equal(t, expected, render(t, "csv", Options{Brief: true}, "a & !!b"))
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument(build(t, "a & (b | !a)"), false)

	assert.Equal(t, "a & (b | !a)", doc.Expression)
	assert.Equal(t, []string{"a", "b"}, doc.Variables)
	assert.Equal(t, 5, doc.ResultColumn)
	assert.Equal(t, "contingent", doc.Classification)
	assert.Equal(t, []DocumentColumn{
		{Column: 3, Display: "! a", Expanded: "! a", Operands: []int{1}},
		{Column: 4, Display: "b | [3]", Expanded: "b | (! a)", Operands: []int{2, 3}},
		{Column: 5, Display: "a & [4]", Expanded: "a & (b | (! a))", Operands: []int{1, 4}},
	}, doc.Columns)
	assert.Equal(t, DocumentRow{Inputs: []int{1, 1}, Values: []int{0, 1, 1}}, doc.Rows[3])
}

func TestJSONFormatter(t *testing.T) {
	output := render(t, "json", Options{}, "a | !a")

	var doc Document
	assert.NoError(t, json.Unmarshal([]byte(output), &doc))
	assert.Equal(t, "tautology", doc.Classification)
	assert.Equal(t, []DocumentRow{
		{Inputs: []int{0}, Values: []int{1, 1}},
		{Inputs: []int{1}, Values: []int{0, 1}},
	}, doc.Rows)
}

func TestYAMLFormatter(t *testing.T) {
	output := render(t, "yaml", Options{Brief: true}, "a & !a")

	assert.Contains(t, output, "classification: contradiction")

	var doc Document
	assert.NoError(t, yaml.Unmarshal([]byte(output), &doc))
	assert.Equal(t, []DocumentColumn{{Column: 2, Display: "[result]"}}, doc.Columns)
	assert.Equal(t, 2, len(doc.Rows))
}

func TestXMLFormatter(t *testing.T) {
	output := render(t, "xml", Options{}, "a & (b | !a)")

	assert.True(t, strings.HasPrefix(output, `<?xml version="1.0" encoding="UTF-8"?>`))

	doc := etree.NewDocument()
	assert.NoError(t, doc.ReadFromString(output))

	root := doc.SelectElement("truthtable")
	assert.NotZero(t, root)
	assert.Equal(t, "a & (b | !a)", root.SelectAttrValue("expression", ""))
	assert.Equal(t, "5", root.SelectAttrValue("result-column", ""))
	assert.Equal(t, "contingent", root.SelectAttrValue("classification", ""))

	variables := root.FindElements("variables/variable")
	assert.Equal(t, 2, len(variables))
	assert.Equal(t, "b", variables[1].SelectAttrValue("name", ""))

	columns := root.FindElements("columns/column")
	assert.Equal(t, 3, len(columns))
	assert.Equal(t, "b | [3]", columns[1].SelectAttrValue("display", ""))
	assert.Equal(t, "b | (! a)", columns[1].SelectAttrValue("expanded", ""))
	assert.Equal(t, "2 3", columns[1].SelectAttrValue("operands", ""))

	rows := root.FindElements("rows/row")
	assert.Equal(t, 4, len(rows))
	assert.Equal(t, "1 1", rows[3].SelectAttrValue("inputs", ""))
	assert.Equal(t, "0 1 1", rows[3].SelectAttrValue("values", ""))
}

func TestXMLFormatter_Brief(t *testing.T) {
	output := render(t, "xml", Options{Brief: true}, "a | !a")

	assert.Contains(t, output, `<column number="2" display="[result]"/>`)
	assert.Contains(t, output, `<row inputs="0" values="1"/>`)
	assert.Contains(t, output, `<row inputs="1" values="1"/>`)
}

func TestNew_UnknownFormat(t *testing.T) {
	f, err := New("html", Options{})
	assert.Zero(t, f)
	assert.IsError(t, err, ErrUnknownFormat)
}
