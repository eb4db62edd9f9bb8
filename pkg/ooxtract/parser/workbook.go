package parser

import (
	"strconv"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/xmltree"
)

// SheetEntry is a sheet declared in xl/workbook.xml.
type SheetEntry struct {
	// Name is the declared sheet name.
	Name string
	// Index is the 1-based declaration order.
	Index int
	// SheetID is the sheetId attribute.
	SheetID string
	// RelID is the r:id attribute pointing into the workbook relationships.
	RelID string
	// State is the visibility state (hidden, veryHidden) or empty.
	State string
}

// DefinedName is a workbook-level or sheet-local defined name.
type DefinedName struct {
	Name     string
	RefersTo string
	// LocalSheetID is the 0-based sheet index for sheet-local names, or -1.
	LocalSheetID int
}

// WorkbookInfo is the parsed content of xl/workbook.xml that extraction needs.
type WorkbookInfo struct {
	Sheets       []SheetEntry
	DefinedNames []DefinedName
}

// ParseWorkbook enumerates the sheet declarations and defined names of a
// parsed workbook element, in document order.
func ParseWorkbook(root *xmltree.Node) WorkbookInfo {
	var info WorkbookInfo

	for i, s := range root.FindAll("sheet") {
		info.Sheets = append(info.Sheets, SheetEntry{
			Name:    s.AttrOr("name", ""),
			Index:   i + 1,
			SheetID: s.AttrOr("sheetId", ""),
			RelID:   s.AttrOr("id", ""),
			State:   stateAttr(s),
		})
	}

	for _, dn := range root.FindAll("definedName") {
		local := -1
		if v, ok := dn.Attr("localSheetId"); ok {
			if n, err := strconv.Atoi(v); err == nil {
				local = n
			}
		}
		info.DefinedNames = append(info.DefinedNames, DefinedName{
			Name:         dn.AttrOr("name", ""),
			RefersTo:     dn.Text(),
			LocalSheetID: local,
		})
	}

	return info
}

func stateAttr(n *xmltree.Node) string {
	state := n.AttrOr("state", "")
	if state == "visible" {
		return ""
	}
	return state
}
