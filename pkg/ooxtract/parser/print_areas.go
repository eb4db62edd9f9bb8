package parser

import (
	"strings"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas collects the print areas declared as defined names.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(info WorkbookInfo) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range info.DefinedNames {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		// Sheet-local names may omit the sheet prefix.
		if sheetName == "" && dn.LocalSheetID >= 0 && dn.LocalSheetID < len(info.Sheets) {
			sheetName = info.Sheets[dn.LocalSheetID].Name
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var areas []models.PrintArea
	var sheetName string

	for _, part := range splitReferences(ref) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		sheet, rangeStr := splitSheetRef(part)
		if sheetName == "" {
			sheetName = sheet
		}

		if area := parseRangeToArea(rangeStr); area != nil {
			areas = append(areas, *area)
		}
	}

	return sheetName, areas
}

// splitReferences splits on commas outside quoted sheet names.
func splitReferences(ref string) []string {
	var parts []string
	var b strings.Builder
	quoted := false
	for _, r := range ref {
		switch {
		case r == '\'':
			quoted = !quoted
			b.WriteRune(r)
		case r == ',' && !quoted:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	return append(parts, b.String())
}

// splitSheetRef splits "Sheet!A1:B2" or "'My Sheet'!A1:B2" into the sheet
// name and the range. The sheet name is empty when the reference has none.
func splitSheetRef(part string) (string, string) {
	if strings.HasPrefix(part, "'") {
		for i := 1; i < len(part); i++ {
			if part[i] != '\'' {
				continue
			}
			if i+1 < len(part) && part[i+1] == '\'' {
				i++
				continue
			}
			sheet := strings.ReplaceAll(part[1:i], "''", "'")
			return sheet, strings.TrimPrefix(part[i+1:], "!")
		}
		return "", part
	}
	if idx := strings.IndexByte(part, '!'); idx >= 0 {
		return part[:idx], part[idx+1:]
	}
	return "", part
}

// parseRangeToArea parses a range string like $A$1:$D$10 to PrintArea.
// A single cell reference yields a one-cell area.
func parseRangeToArea(rangeStr string) *models.PrintArea {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.PrintArea{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
