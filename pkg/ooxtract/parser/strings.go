package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/xmltree"
)

// ErrCellDecode is matched by every *CellDecodeError.
var ErrCellDecode = errors.New("cell decode error")

// errIndexOutOfRange is the cause for shared-string indices past the table.
var errIndexOutOfRange = errors.New("index out of range")

// CellDecodeError reports a cell whose value could not be resolved. It is
// recoverable: the cell is emitted with a placeholder value instead.
type CellDecodeError struct {
	Ref string
	Raw string
	Err error
}

func (e *CellDecodeError) Error() string {
	return fmt.Sprintf("cell %s: shared string %q: %v", e.Ref, e.Raw, e.Err)
}

func (e *CellDecodeError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCellDecode) match.
func (e *CellDecodeError) Is(target error) bool {
	return target == ErrCellDecode
}

// SharedStrings is the shared-string table of a workbook, indexed from 0.
type SharedStrings []string

// LoadSharedStrings reads xl/sharedStrings.xml. A missing part yields an
// empty table and no error: the workbook then uses inline strings only.
func LoadSharedStrings(r PartReader) (SharedStrings, error) {
	if !r.Has(PartSharedStrings) {
		return SharedStrings{}, nil
	}
	root, err := ReadXML(r, PartSharedStrings)
	if err != nil {
		return SharedStrings{}, err
	}
	return ParseSharedStrings(root), nil
}

// ParseSharedStrings builds the table from a parsed sst element. Each string
// item yields the concatenation of its text runs, whether it is stored as a
// single <t> or as several formatted <r><t> runs.
func ParseSharedStrings(root *xmltree.Node) SharedStrings {
	items := root.FindAll("si")
	table := make(SharedStrings, 0, len(items))
	for _, si := range items {
		table = append(table, itemText(si))
	}
	return table
}

// itemText concatenates the <t> descendants of a string item in document
// order. Phonetic runs (<rPh>) are reading hints and are skipped.
func itemText(item *xmltree.Node) string {
	var b strings.Builder
	item.Walk(func(n *xmltree.Node) bool {
		switch n.Local {
		case "rPh":
			return false
		case "t":
			b.WriteString(n.Text())
		}
		return true
	})
	return b.String()
}

// Lookup resolves a raw shared-string index.
func (s SharedStrings) Lookup(raw string) (string, error) {
	i, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(s) {
		return "", fmt.Errorf("%w: %d of %d", errIndexOutOfRange, i, len(s))
	}
	return s[i], nil
}

// Placeholder is the value emitted for an unresolvable shared-string index.
func Placeholder(raw string) string {
	return "STR#" + raw
}
