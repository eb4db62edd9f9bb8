package models

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1" yaml:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1" yaml:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2" yaml:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2" yaml:"c2"`
}

// Contains reports whether the 1-based cell coordinate lies inside the area.
func (a PrintArea) Contains(col, row int) bool {
	return row >= a.R1 && row <= a.R2 && col >= a.C1 && col <= a.C2
}

// PrintAreaView represents a slice of a sheet restricted to a print area.
type PrintAreaView struct {
	// BookName is the workbook name owning the area.
	BookName string `json:"book_name" yaml:"book_name"`
	// SheetName is the sheet name owning the area.
	SheetName string `json:"sheet_name" yaml:"sheet_name"`
	// Area is the print area bounds.
	Area PrintArea `json:"area" yaml:"area"`
	// Rows contains the cells inside the area, row by row.
	Rows []Row `json:"rows,omitempty" yaml:"rows,omitempty"`
}

// NewPrintAreaView restricts a sheet's rows to the area. Rows left without
// cells are dropped.
func NewPrintAreaView(bookName string, sheet *Sheet, area PrintArea) PrintAreaView {
	view := PrintAreaView{
		BookName:  bookName,
		SheetName: sheet.Name,
		Area:      area,
	}
	for _, row := range sheet.Rows {
		if row.R < area.R1 || row.R > area.R2 {
			continue
		}
		var cells []Cell
		for _, c := range row.Cells {
			if area.Contains(c.Col, c.Row) {
				cells = append(cells, c)
			}
		}
		if len(cells) > 0 {
			view.Rows = append(view.Rows, Row{R: row.R, Cells: cells})
		}
	}
	return view
}
