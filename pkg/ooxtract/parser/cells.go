package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/models"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/xmltree"
	"github.com/xuri/excelize/v2"
)

// CellOptions configures worksheet decoding.
type CellOptions struct {
	// SkipFormulas drops formula elements; formula-only cells are then omitted.
	SkipFormulas bool
}

// SheetCells is the decoded content of one worksheet part.
type SheetCells struct {
	Rows []models.Row
	// DecodeErrors lists the cells that degraded to placeholders.
	DecodeErrors []*CellDecodeError
}

// DecodeWorksheet decodes the rows of a parsed worksheet element in document
// order. Cells that carry neither a value nor a formula are omitted; rows are
// kept even when they end up empty so row indices match the source.
func DecodeWorksheet(root *xmltree.Node, sst SharedStrings, opts CellOptions) SheetCells {
	var out SheetCells

	prevRow := 0
	for _, rowNode := range root.FindAll("row") {
		rowNum := prevRow + 1
		if v, ok := rowNode.Attr("r"); ok {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				rowNum = n
			}
		}
		prevRow = rowNum

		row := models.Row{R: rowNum, Cells: []models.Cell{}}
		prevCol := 0
		for _, c := range rowNode.ChildrenNamed("c") {
			cell, decodeErr := decodeCell(c, rowNum, prevCol, sst, opts)
			if cell.Col > 0 {
				prevCol = cell.Col
			} else {
				prevCol++
			}
			if decodeErr != nil {
				out.DecodeErrors = append(out.DecodeErrors, decodeErr)
			}
			if !cell.HasValue() && cell.Formula == nil {
				continue
			}
			row.Cells = append(row.Cells, cell)
		}
		out.Rows = append(out.Rows, row)
	}

	return out
}

// decodeCell decodes one <c> element. A cell without an r attribute is
// placed right after the previous cell of the row.
func decodeCell(c *xmltree.Node, rowNum, prevCol int, sst SharedStrings, opts CellOptions) (models.Cell, *CellDecodeError) {
	ref, ok := c.Attr("r")
	if !ok || ref == "" {
		if name, err := excelize.CoordinatesToCellName(prevCol+1, rowNum); err == nil {
			ref = name
		}
	}

	cell := models.Cell{Ref: ref}
	if col, row, err := excelize.CellNameToCoordinates(ref); err == nil {
		cell.Col, cell.Row = col, row
	}

	var decodeErr *CellDecodeError
	cellType := c.AttrOr("t", "")
	v := c.Child("v")

	switch cellType {
	case "inlineStr":
		if is := c.Child("is"); is != nil {
			cell.Value, cell.Kind = itemText(is), models.KindString
		} else if v != nil {
			cell.Value, cell.Kind = v.Text(), models.KindString
		}
	case "s":
		if v != nil && v.HasText() {
			raw := v.Text()
			s, err := sst.Lookup(raw)
			if err != nil {
				decodeErr = &CellDecodeError{Ref: ref, Raw: raw, Err: err}
				cell.Value, cell.Kind = Placeholder(raw), models.KindPlaceholder
			} else {
				cell.Value, cell.Kind = s, models.KindString
			}
		}
	case "str":
		if v != nil {
			cell.Value, cell.Kind = v.Text(), models.KindString
		}
	default:
		if v != nil && v.HasText() {
			cell.Value = v.Text()
			cell.Kind = classifyValue(cellType, cell.Value)
		}
	}

	if f := c.Child("f"); f != nil && !opts.SkipFormulas {
		cell.Formula = &models.Formula{
			Text:        f.Text(),
			Shared:      f.Text() == "",
			Type:        f.AttrOr("t", ""),
			SharedIndex: f.AttrOr("si", ""),
			Ref:         f.AttrOr("ref", ""),
		}
	}

	return cell, decodeErr
}

// classifyValue tags a raw value by its cell type. Untyped and "n" cells
// are numbers when the text parses as one and strings otherwise.
func classifyValue(cellType, raw string) models.ValueKind {
	switch cellType {
	case "b":
		return models.KindBool
	case "e":
		return models.KindError
	case "d":
		return models.KindDate
	case "", "n":
		if isNumeric(raw) {
			return models.KindNumber
		}
		return models.KindString
	default:
		return models.KindString
	}
}

// isNumeric reports whether s parses as an integer or a decimal. Spellings
// such as "NaN", "Inf" or hex floats are not numeric cell values.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return false
		}
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
