package parser

import (
	"path"
	"strings"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/models"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/xmltree"
)

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID         string
	Type       string
	Target     string
	TargetMode string
}

// IsExternal reports whether the target is outside the package.
func (r Relationship) IsExternal() bool {
	return strings.EqualFold(r.TargetMode, "External")
}

// TypeName returns the last path segment of the relationship type URI,
// e.g. "worksheet" or "hyperlink".
func (r Relationship) TypeName() string {
	return path.Base(r.Type)
}

// ParseRelationships maps relationship IDs to their entries.
func ParseRelationships(root *xmltree.Node) map[string]Relationship {
	result := make(map[string]Relationship)
	for _, n := range root.FindAll("Relationship") {
		rel := Relationship{
			ID:         n.AttrOr("Id", ""),
			Type:       n.AttrOr("Type", ""),
			Target:     n.AttrOr("Target", ""),
			TargetMode: n.AttrOr("TargetMode", ""),
		}
		if rel.ID != "" {
			result[rel.ID] = rel
		}
	}
	return result
}

// RelsPartFor returns the relationships part of a source part, e.g.
// xl/worksheets/sheet1.xml -> xl/worksheets/_rels/sheet1.xml.rels.
func RelsPartFor(part string) string {
	dir, file := path.Split(part)
	return dir + "_rels/" + file + ".rels"
}

// ResolveTarget resolves a relationship target against the directory of the
// source part. Absolute targets are package-rooted.
func ResolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return strings.TrimPrefix(path.Clean(path.Join(baseDir, target)), "/")
}

// SheetMapping selects how declared sheets are mapped to parts.
type SheetMapping string

const (
	// SheetMappingAuto uses workbook relationships and falls back to the
	// positional convention for sheets they do not resolve.
	SheetMappingAuto SheetMapping = "auto"
	// SheetMappingPositional maps the i-th declared sheet to
	// xl/worksheets/sheet{i}.xml without consulting relationships.
	SheetMappingPositional SheetMapping = "positional"
)

// SheetPart is the resolved location of a sheet.
type SheetPart struct {
	Part    string
	Mapping string
	// Type is the relationship type name; "worksheet" for positional mapping.
	Type string
}

// HasCells reports whether the part type carries sheetData.
func (p SheetPart) HasCells() bool {
	return p.Type == "worksheet" || p.Type == "macrosheet"
}

// MapSheet resolves the part of a declared sheet. rels may be nil.
func MapSheet(entry SheetEntry, rels map[string]Relationship, mode SheetMapping) SheetPart {
	if mode != SheetMappingPositional && rels != nil && entry.RelID != "" {
		if rel, ok := rels[entry.RelID]; ok && !rel.IsExternal() && rel.Target != "" {
			name := rel.TypeName()
			if name == "xlMacrosheet" {
				name = "macrosheet"
			}
			switch name {
			case "worksheet", "chartsheet", "dialogsheet", "macrosheet":
				return SheetPart{
					Part:    ResolveTarget("xl", rel.Target),
					Mapping: models.MappingRelationship,
					Type:    name,
				}
			}
		}
	}
	return SheetPart{
		Part:    PositionalSheetPart(entry.Index),
		Mapping: models.MappingPositional,
		Type:    "worksheet",
	}
}

// MainDocumentPart returns the target of the package-level officeDocument
// relationship in _rels/.rels, or "" when there is none.
func MainDocumentPart(r PartReader) string {
	if !r.Has("_rels/.rels") {
		return ""
	}
	root, err := ReadXML(r, "_rels/.rels")
	if err != nil {
		return ""
	}
	for _, rel := range ParseRelationships(root) {
		if rel.TypeName() == "officeDocument" && !rel.IsExternal() {
			return ResolveTarget("", rel.Target)
		}
	}
	return ""
}
