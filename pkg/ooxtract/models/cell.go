// Package models defines the records produced by OOXML extraction.
package models

import "strconv"

// ValueKind tags how a cell value was obtained so consumers can tell
// literal numbers from resolved text.
type ValueKind string

const (
	// KindNone marks a cell that carries only a formula.
	KindNone ValueKind = ""
	// KindString is resolved text: a shared string, an inline string or a
	// formula-computed string.
	KindString ValueKind = "string"
	// KindNumber is a numeric-looking raw value.
	KindNumber ValueKind = "number"
	// KindBool is a boolean cell ("0" or "1").
	KindBool ValueKind = "bool"
	// KindError is a cell error literal such as "#DIV/0!".
	KindError ValueKind = "error"
	// KindDate is an ISO 8601 date cell.
	KindDate ValueKind = "date"
	// KindPlaceholder marks a shared-string reference that could not be
	// resolved. The value is "STR#<raw>".
	KindPlaceholder ValueKind = "placeholder"
)

// SharedFormulaMarker is the rendering of a formula whose text is not
// inlined in the cell.
const SharedFormulaMarker = "[SHARED_FORMULA]"

// Formula is the formula attached to a cell.
type Formula struct {
	// Text is the literal formula without a leading "=".
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// Shared is set when the formula element carries no text, i.e. the
	// cell references a shared formula defined elsewhere.
	Shared bool `json:"shared,omitempty" yaml:"shared,omitempty"`
	// Type is the formula type attribute (shared, array, dataTable).
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// SharedIndex is the si attribute linking a shared formula group.
	SharedIndex string `json:"si,omitempty" yaml:"si,omitempty"`
	// Ref is the range a shared or array formula applies to.
	Ref string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// String renders the formula as "=<text>" or SharedFormulaMarker.
func (f Formula) String() string {
	if f.Shared {
		return SharedFormulaMarker
	}
	return "=" + f.Text
}

// Cell is a single decoded cell.
type Cell struct {
	// Ref is the A1-style reference.
	Ref string `json:"ref" yaml:"ref"`
	// Col is the 1-based column index (0 if Ref is not a valid reference).
	Col int `json:"col" yaml:"col"`
	// Row is the 1-based row index (0 if Ref is not a valid reference).
	Row int `json:"row" yaml:"row"`
	// Value is the resolved value text.
	Value string `json:"value" yaml:"value"`
	// Kind tags the value. KindNone when the cell has only a formula.
	Kind ValueKind `json:"kind,omitempty" yaml:"kind,omitempty"`
	// Formula is nil when the cell has no formula element.
	Formula *Formula `json:"formula,omitempty" yaml:"formula,omitempty"`
}

// HasValue reports whether the cell carries a value.
func (c Cell) HasValue() bool {
	return c.Kind != KindNone
}

// Number returns the value as a float when the cell is numeric.
func (c Cell) Number() (float64, bool) {
	if c.Kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(c.Value, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Row is an ordered sequence of cells in source order.
type Row struct {
	// R is the row index (1-based).
	R int `json:"r" yaml:"r"`
	// Cells holds the cells that carry a value or a formula.
	Cells []Cell `json:"cells" yaml:"cells"`
}
