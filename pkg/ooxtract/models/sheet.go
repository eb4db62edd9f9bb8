package models

// Sheet mapping methods recorded on a Sheet.
const (
	MappingRelationship = "relationship"
	MappingPositional   = "positional"
)

// Sheet represents structured data for a single sheet.
type Sheet struct {
	// Name is the declared sheet name.
	Name string `json:"name" yaml:"name"`
	// Index is the 1-based ordinal position in the workbook.
	Index int `json:"index" yaml:"index"`
	// State is "hidden" or "veryHidden"; empty for visible sheets.
	State string `json:"state,omitempty" yaml:"state,omitempty"`
	// Type is the sheet part type when it is not a worksheet (e.g. chartsheet).
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// Part is the package part the sheet was read from.
	Part string `json:"part,omitempty" yaml:"part,omitempty"`
	// Mapping records how Part was found: MappingRelationship or MappingPositional.
	Mapping string `json:"mapping,omitempty" yaml:"mapping,omitempty"`
	// Rows contains extracted rows in document order.
	Rows []Row `json:"rows,omitempty" yaml:"rows,omitempty"`
	// Links maps cell references to hyperlink targets.
	Links map[string]string `json:"links,omitempty" yaml:"links,omitempty"`
	// TableCandidates contains cell ranges likely representing tables.
	TableCandidates []string `json:"table_candidates,omitempty" yaml:"table_candidates,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty" yaml:"print_areas,omitempty"`
	// Placeholders counts cells whose value degraded to a placeholder.
	Placeholders int `json:"placeholders,omitempty" yaml:"placeholders,omitempty"`

	// Err is set when the sheet could not be extracted. Rows is empty then.
	Err error `json:"-" yaml:"-"`
	// Error is the text of Err, kept for serialized output.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SetErr records a per-sheet failure.
func (s *Sheet) SetErr(err error) {
	s.Err = err
	s.Error = err.Error()
	s.Rows = nil
}

// Failed reports whether the sheet extraction failed.
func (s *Sheet) Failed() bool {
	return s.Err != nil || s.Error != ""
}
