package parser

import (
	"fmt"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/models"
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects a table-like region in decoded rows.
// Returns a list of cell ranges (e.g., "A1:D10") that likely represent tables.
func DetectTables(rows []models.Row, params TableDetectionParams) []string {
	minRow, maxRow, minCol, maxCol, nonEmpty := findDataBounds(rows)
	if minRow < 0 || nonEmpty < params.MinNonemptyCells {
		return nil
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	density := float64(nonEmpty) / float64(totalCells)
	if density < params.DensityMin {
		return nil
	}

	startCell, err := excelize.CoordinatesToCellName(minCol, minRow)
	if err != nil {
		return nil
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol, maxRow)
	if err != nil {
		return nil
	}
	return []string{fmt.Sprintf("%s:%s", startCell, endCell)}
}

// findDataBounds finds the bounding box of cells carrying a non-empty value.
// Bounds are 1-based; minRow is -1 when there is no data.
func findDataBounds(rows []models.Row) (minRow, maxRow, minCol, maxCol, count int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for _, row := range rows {
		for _, cell := range row.Cells {
			if cell.Value == "" || cell.Col == 0 || cell.Row == 0 {
				continue
			}
			count++
			if minRow < 0 || cell.Row < minRow {
				minRow = cell.Row
			}
			if maxRow < 0 || cell.Row > maxRow {
				maxRow = cell.Row
			}
			if minCol < 0 || cell.Col < minCol {
				minCol = cell.Col
			}
			if maxCol < 0 || cell.Col > maxCol {
				maxCol = cell.Col
			}
		}
	}

	return
}
