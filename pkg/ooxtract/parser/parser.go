// Package parser decodes the XML parts of spreadsheet and word-processing
// packages into extraction records.
package parser

import (
	"fmt"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/xmltree"
)

// Well-known part names.
const (
	PartSharedStrings = "xl/sharedStrings.xml"
	PartWorkbook      = "xl/workbook.xml"
	PartWorkbookRels  = "xl/_rels/workbook.xml.rels"
	PartDocument      = "word/document.xml"
)

// PartReader gives read access to package parts. *opc.Package implements it.
type PartReader interface {
	Has(name string) bool
	Read(name string) ([]byte, error)
}

// ReadXML reads a part and parses it into a tree.
func ReadXML(r PartReader, name string) (*xmltree.Node, error) {
	data, err := r.Read(name)
	if err != nil {
		return nil, err
	}
	root, err := xmltree.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return root, nil
}

// PositionalSheetPart returns the worksheet part conventionally used for the
// i-th declared sheet (1-based).
func PositionalSheetPart(i int) string {
	return fmt.Sprintf("xl/worksheets/sheet%d.xml", i)
}
