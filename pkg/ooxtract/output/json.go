// Package output serializes extraction results as JSON, YAML or the plain
// text report format.
package output

import (
	"encoding/json"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/models"
)

// ToJSON serializes an extraction result (a workbook, a document or an
// ooxtract.Result) to JSON.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.Sheet, pretty bool) ([]byte, error) {
	return ToJSON(sheet, pretty)
}

// PrintAreaViewToJSON serializes a print area view.
func PrintAreaViewToJSON(view *models.PrintAreaView, pretty bool) ([]byte, error) {
	return ToJSON(view, pretty)
}
