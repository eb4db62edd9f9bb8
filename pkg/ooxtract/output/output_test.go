package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/models"
	"gopkg.in/yaml.v3"
)

func sampleWorkbook() *models.Workbook {
	return &models.Workbook{
		BookName: "book.xlsx",
		Sheets: []models.Sheet{
			{
				Name:  "Data",
				Index: 1,
				Rows: []models.Row{
					{R: 1, Cells: []models.Cell{
						{Ref: "A1", Col: 1, Row: 1, Value: "Revenue", Kind: models.KindString},
						{Ref: "B1", Col: 2, Row: 1, Value: "42", Kind: models.KindNumber, Formula: &models.Formula{Text: "A2*2"}},
					}},
					{R: 2, Cells: []models.Cell{
						{Ref: "A2", Col: 1, Row: 2, Value: "STR#5", Kind: models.KindPlaceholder},
						{Ref: "B2", Col: 2, Row: 2, Value: "84", Kind: models.KindNumber, Formula: &models.Formula{Shared: true, Type: "shared", SharedIndex: "0"}},
					}},
					{R: 3, Cells: []models.Cell{}},
				},
			},
			{Name: "Broken", Index: 2, Error: "xml malformed"},
		},
	}
}

func TestWorkbookText(t *testing.T) {
	got := string(WorkbookText(sampleWorkbook(), TextOptions{}))
	want := "--- Sheet: Data ---\n" +
		"A1: Revenue | B1: 42 [FORMULA: =A2*2]\n" +
		"A2: STR#5 | B2: 84 [SHARED_FORMULA]\n" +
		"\n" +
		"\n" +
		"--- Sheet: Broken ---\n" +
		"ERROR: xml malformed\n"
	if got != want {
		t.Errorf("WorkbookText() =\n%s\nwant:\n%s", got, want)
	}
}

func TestWorkbookTextOptions(t *testing.T) {
	got := string(WorkbookText(sampleWorkbook(), TextOptions{MaxRows: 1, TagNumbers: true}))
	if !strings.Contains(got, "B1: NUM:42 [FORMULA: =A2*2]") {
		t.Errorf("expected NUM: tag, got:\n%s", got)
	}
	if strings.Contains(got, "A2:") {
		t.Errorf("MaxRows=1 should stop after the first row, got:\n%s", got)
	}
	if strings.Contains(got, "A1: NUM:") {
		t.Errorf("string cells must not be tagged, got:\n%s", got)
	}
}

func TestDocumentText(t *testing.T) {
	doc := &models.Document{Paragraphs: []string{"Title", "", "", "Name:\tValue"}}
	got := string(DocumentText(doc))
	want := "P0: Title\nP1: Name:\tValue\n"
	if got != want {
		t.Errorf("DocumentText() = %q, want %q", got, want)
	}
}

func TestStringsText(t *testing.T) {
	got := string(StringsText([]string{"alpha", "", "beta"}))
	if got != "0: alpha\n1: \n2: beta\n" {
		t.Errorf("StringsText() = %q", got)
	}
}

func TestToJSON(t *testing.T) {
	wb := sampleWorkbook()
	data, err := ToJSON(wb, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded struct {
		BookName string `json:"book_name"`
		Sheets   []struct {
			Name  string `json:"name"`
			Error string `json:"error"`
			Rows  []struct {
				R     int `json:"r"`
				Cells []struct {
					Ref     string `json:"ref"`
					Kind    string `json:"kind"`
					Formula *struct {
						Text   string `json:"text"`
						Shared bool   `json:"shared"`
					} `json:"formula"`
				} `json:"cells"`
			} `json:"rows"`
		} `json:"sheets"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.BookName != "book.xlsx" || len(decoded.Sheets) != 2 {
		t.Fatalf("decoded = %+v", decoded)
	}
	b2 := decoded.Sheets[0].Rows[1].Cells[1]
	if b2.Formula == nil || !b2.Formula.Shared {
		t.Errorf("B2 formula lost its shared flag: %+v", b2)
	}
	if decoded.Sheets[1].Error != "xml malformed" {
		t.Errorf("sheet error = %q", decoded.Sheets[1].Error)
	}

	pretty, err := ToJSON(wb, true)
	if err != nil {
		t.Fatalf("ToJSON pretty failed: %v", err)
	}
	if !strings.Contains(string(pretty), "\n  \"sheets\"") {
		t.Errorf("pretty output is not indented")
	}
}

func TestSheetAndPrintAreaJSON(t *testing.T) {
	wb := sampleWorkbook()
	view := models.NewPrintAreaView(wb.BookName, &wb.Sheets[0], models.PrintArea{R1: 1, C1: 2, R2: 2, C2: 2})

	data, err := PrintAreaViewToJSON(&view, false)
	if err != nil {
		t.Fatalf("PrintAreaViewToJSON failed: %v", err)
	}
	var decoded models.PrintAreaView
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(decoded.Rows) != 2 || decoded.Rows[0].Cells[0].Ref != "B1" || decoded.Rows[1].Cells[0].Ref != "B2" {
		t.Errorf("view rows = %+v", decoded.Rows)
	}

	if _, err := SheetToJSON(&wb.Sheets[0], true); err != nil {
		t.Errorf("SheetToJSON failed: %v", err)
	}
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(&models.Document{BookName: "memo.docx", Paragraphs: []string{"a", ""}})
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	var decoded models.Document
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if decoded.BookName != "memo.docx" || len(decoded.Paragraphs) != 2 {
		t.Errorf("decoded = %+v", decoded)
	}
	if !strings.HasPrefix(string(data), "book_name: memo.docx\n") {
		t.Errorf("unexpected YAML layout:\n%s", data)
	}
}
