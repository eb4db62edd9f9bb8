package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/opc"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/xmltree"
)

// mapReader is an in-memory PartReader.
type mapReader map[string]string

func (m mapReader) Has(name string) bool {
	_, ok := m[name]
	return ok
}

func (m mapReader) Read(name string) ([]byte, error) {
	s, ok := m[name]
	if !ok {
		return nil, opc.ErrPartMissing
	}
	return []byte(s), nil
}

func mustParse(t *testing.T, s string) *xmltree.Node {
	t.Helper()
	root, err := xmltree.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return root
}

func TestPositionalSheetPart(t *testing.T) {
	tests := []struct {
		index    int
		expected string
	}{
		{1, "xl/worksheets/sheet1.xml"},
		{2, "xl/worksheets/sheet2.xml"},
		{12, "xl/worksheets/sheet12.xml"},
	}
	for _, tt := range tests {
		if got := PositionalSheetPart(tt.index); got != tt.expected {
			t.Errorf("PositionalSheetPart(%d) = %q, expected %q", tt.index, got, tt.expected)
		}
	}
}

func TestReadXMLErrors(t *testing.T) {
	r := mapReader{"xl/workbook.xml": "<workbook><sheets></workbook>"}

	if _, err := ReadXML(r, "xl/styles.xml"); !errors.Is(err, opc.ErrPartMissing) {
		t.Errorf("expected ErrPartMissing, got %v", err)
	}
	_, err := ReadXML(r, "xl/workbook.xml")
	if !errors.Is(err, xmltree.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "xl/workbook.xml: ") {
		t.Errorf("error should name the part: %q", err)
	}
}

func TestMainDocumentPart(t *testing.T) {
	rels := `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="/word/document.xml"/>
</Relationships>`

	tests := []struct {
		name string
		r    mapReader
		want string
	}{
		{"office document", mapReader{"_rels/.rels": rels}, "word/document.xml"},
		{"no package rels", mapReader{}, ""},
		{"malformed rels", mapReader{"_rels/.rels": "<Relationships>"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MainDocumentPart(tt.r); got != tt.want {
				t.Errorf("MainDocumentPart() = %q, want %q", got, tt.want)
			}
		})
	}
}
