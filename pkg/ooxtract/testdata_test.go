package ooxtract

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writePackage builds a ZIP package from part name -> content pairs.
func writePackage(t *testing.T, name string, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating package: %v", err)
	}
	w := zip.NewWriter(f)

	names := make([]string, 0, len(parts))
	for n := range parts {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		fw, err := w.Create(n)
		if err != nil {
			t.Fatalf("creating part %s: %v", n, err)
		}
		if _, err := fw.Write([]byte(parts[n])); err != nil {
			t.Fatalf("writing part %s: %v", n, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zip writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("closing package: %v", err)
	}
	return path
}

const fixtureWorkbook = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"
          xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
    <sheet name="Summary" sheetId="1" r:id="rId2"/>
    <sheet name="Data" sheetId="2" r:id="rId1"/>
    <sheet name="Chart1" sheetId="3" r:id="rId3"/>
  </sheets>
  <definedNames>
    <definedName name="_xlnm.Print_Area" localSheetId="1">Data!$A$1:$B$2</definedName>
  </definedNames>
</workbook>`

const fixtureWorkbookRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="/xl/worksheets/sheet2.xml"/>
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/chartsheet" Target="chartsheets/sheet1.xml"/>
  <Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings" Target="sharedStrings.xml"/>
</Relationships>`

const fixtureSharedStrings = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="2" uniqueCount="2">
  <si><t>alpha</t></si>
  <si><r><t>be</t></r><r><t>ta</t></r></si>
</sst>`

// Data sheet: shared strings, an out-of-range index and a shared formula.
const fixtureSheetData = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"
           xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheetData>
    <row r="1">
      <c r="A1" t="s"><v>0</v></c>
      <c r="B1"><f>A2*2</f><v>42</v></c>
    </row>
    <row r="2">
      <c r="A2" t="s"><v>5</v></c>
      <c r="B2"><f t="shared" si="0"/><v>84</v></c>
    </row>
  </sheetData>
  <hyperlinks>
    <hyperlink ref="A1" r:id="rId1"/>
    <hyperlink ref="B1" location="Summary!A1"/>
  </hyperlinks>
</worksheet>`

const fixtureSheetDataRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com/" TargetMode="External"/>
</Relationships>`

const fixtureSheetSummary = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
  <sheetData>
    <row r="1">
      <c r="A1" t="str"><v>Total</v></c>
      <c r="B1"><f>SUM(Data!B1:B2)</f><v>126</v></c>
    </row>
  </sheetData>
</worksheet>`

const fixtureDocument = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Title</w:t></w:r></w:p>
    <w:p/>
    <w:p></w:p>
    <w:p><w:r><w:t>Name:</w:t><w:tab/><w:t>Value</w:t></w:r></w:p>
  </w:body>
</w:document>`

const fixturePackageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="%s"/>
</Relationships>`

// workbookParts returns the parts of the fixture workbook. Callers may
// modify the map before writing it.
func workbookParts() map[string]string {
	return map[string]string{
		"xl/workbook.xml":                     fixtureWorkbook,
		"xl/_rels/workbook.xml.rels":          fixtureWorkbookRels,
		"xl/sharedStrings.xml":                fixtureSharedStrings,
		"xl/worksheets/sheet1.xml":            fixtureSheetData,
		"xl/worksheets/_rels/sheet1.xml.rels": fixtureSheetDataRels,
		"xl/worksheets/sheet2.xml":            fixtureSheetSummary,
		"xl/chartsheets/sheet1.xml":           `<chartsheet/>`,
	}
}
