package formatter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/shibukawa/truthtable/evaluator"
)

// XMLFormatter writes a Document as XML. Row bits are space separated
// attribute values:
//
//	<truthtable expression="a | b" result-column="3" classification="contingent">
//	  <variables><variable column="1" name="a"/>...</variables>
//	  <columns><column number="3" display="a | b" operands="1 2"/></columns>
//	  <rows><row inputs="0 0" values="0"/>...</rows>
//	</truthtable>
type XMLFormatter struct {
	opts Options
}

// Format writes the XML document to w
func (f *XMLFormatter) Format(w io.Writer, table *evaluator.Table) error {
	doc := NewXMLDocument(NewDocument(table, f.opts.Brief))
	doc.Indent(2)

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write XML: %w", err)
	}

	return nil
}

// NewXMLDocument converts a Document into an etree document
func NewXMLDocument(d *Document) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("truthtable")
	root.CreateAttr("expression", d.Expression)
	root.CreateAttr("result-column", strconv.Itoa(d.ResultColumn))
	root.CreateAttr("classification", d.Classification)

	variables := root.CreateElement("variables")
	for i, name := range d.Variables {
		v := variables.CreateElement("variable")
		v.CreateAttr("column", strconv.Itoa(i+1))
		v.CreateAttr("name", name)
	}

	columns := root.CreateElement("columns")
	for _, c := range d.Columns {
		col := columns.CreateElement("column")
		col.CreateAttr("number", strconv.Itoa(c.Column))
		col.CreateAttr("display", c.Display)

		if c.Expanded != "" {
			col.CreateAttr("expanded", c.Expanded)
		}

		if len(c.Operands) > 0 {
			col.CreateAttr("operands", joinInts(c.Operands))
		}
	}

	rows := root.CreateElement("rows")
	for _, r := range d.Rows {
		row := rows.CreateElement("row")
		row.CreateAttr("inputs", joinInts(r.Inputs))
		row.CreateAttr("values", joinInts(r.Values))
	}

	return doc
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
