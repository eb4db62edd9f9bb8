package models

// Workbook is the extraction result for a spreadsheet package.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name" yaml:"book_name"`
	// Sheets holds the sheets in workbook order.
	Sheets []Sheet `json:"sheets" yaml:"sheets"`
	// SharedStrings is the shared-string table (verbose mode only).
	SharedStrings []string `json:"shared_strings,omitempty" yaml:"shared_strings,omitempty"`
	// Warnings lists non-fatal problems found outside any single sheet.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}

// Names returns the sheet names in workbook order.
func (w *Workbook) Names() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
