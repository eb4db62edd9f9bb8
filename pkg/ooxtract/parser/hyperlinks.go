package parser

import (
	"path"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/xmltree"
)

// ExtractHyperlinks maps cell references to hyperlink targets. External
// targets come from the sheet relationships; in-workbook links use the
// location attribute, prefixed with "#".
func ExtractHyperlinks(sheet *xmltree.Node, sheetPart string, rels map[string]Relationship) map[string]string {
	links := make(map[string]string)
	for _, h := range sheet.FindAll("hyperlink") {
		ref := h.AttrOr("ref", "")
		if ref == "" {
			continue
		}
		if id, ok := h.Attr("id"); ok {
			if rel, ok := rels[id]; ok && rel.Target != "" {
				target := rel.Target
				if !rel.IsExternal() {
					target = ResolveTarget(path.Dir(sheetPart), target)
				}
				if loc := h.AttrOr("location", ""); loc != "" {
					target += "#" + loc
				}
				links[ref] = target
				continue
			}
		}
		if loc := h.AttrOr("location", ""); loc != "" {
			links[ref] = "#" + loc
		}
	}
	return links
}
