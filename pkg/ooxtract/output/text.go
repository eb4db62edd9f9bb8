package output

import (
	"fmt"
	"strings"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/models"
)

// TextOptions controls the plain text report.
type TextOptions struct {
	// MaxRows limits the rows printed per sheet. Zero prints all rows.
	MaxRows int
	// TagNumbers prefixes numeric values with "NUM:".
	TagNumbers bool
}

// WorkbookText renders a workbook as one line per row, each cell written as
// "A1: value" followed by its formula, cells separated by " | ".
func WorkbookText(wb *models.Workbook, opts TextOptions) []byte {
	var b strings.Builder
	for i := range wb.Sheets {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeSheetText(&b, &wb.Sheets[i], opts)
	}
	for _, w := range wb.Warnings {
		fmt.Fprintf(&b, "WARNING: %s\n", w)
	}
	return []byte(b.String())
}

func writeSheetText(b *strings.Builder, sheet *models.Sheet, opts TextOptions) {
	fmt.Fprintf(b, "--- Sheet: %s ---\n", sheet.Name)
	if sheet.Failed() {
		fmt.Fprintf(b, "ERROR: %s\n", sheet.Error)
		return
	}

	rows := sheet.Rows
	if opts.MaxRows > 0 && len(rows) > opts.MaxRows {
		rows = rows[:opts.MaxRows]
	}
	for _, row := range rows {
		cells := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, CellText(c, opts.TagNumbers))
		}
		b.WriteString(strings.Join(cells, " | "))
		b.WriteByte('\n')
	}
}

// CellText renders one cell as "A1: value [FORMULA: =...]".
func CellText(c models.Cell, tagNumbers bool) string {
	val := c.Value
	if tagNumbers && c.Kind == models.KindNumber {
		val = "NUM:" + val
	}
	s := c.Ref + ": " + val
	if c.Formula != nil {
		if c.Formula.Shared {
			s += " " + models.SharedFormulaMarker
		} else {
			s += " [FORMULA: " + c.Formula.String() + "]"
		}
	}
	return s
}

// DocumentText renders the paragraphs that carry text as "P<i>: text",
// numbered from zero.
func DocumentText(doc *models.Document) []byte {
	var b strings.Builder
	_, paras := doc.NonEmpty()
	for i, p := range paras {
		fmt.Fprintf(&b, "P%d: %s\n", i, p)
	}
	return []byte(b.String())
}

// StringsText renders a shared-string table as "<index>: text".
func StringsText(table []string) []byte {
	var b strings.Builder
	for i, s := range table {
		fmt.Fprintf(&b, "%d: %s\n", i, s)
	}
	return []byte(b.String())
}
