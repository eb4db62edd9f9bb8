// Package ooxtract extracts text and tabular content from OOXML packages
// (.xlsx and .docx) without a full office-document library.
package ooxtract

import (
	"log/slog"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/parser"
)

// Mode represents the extraction mode.
type Mode string

const (
	// ModeLight extracts cell values only (no formulas, print areas or table candidates).
	ModeLight Mode = "light"
	// ModeStandard extracts values, formulas, print areas and table candidates.
	ModeStandard Mode = "standard"
	// ModeVerbose also includes cell hyperlinks and the shared-string table.
	ModeVerbose Mode = "verbose"
)

// SheetMapping selects how declared sheets are mapped to worksheet parts.
type SheetMapping = parser.SheetMapping

const (
	// SheetMappingAuto resolves xl/_rels/workbook.xml.rels and falls back to
	// the positional convention for unresolved sheets.
	SheetMappingAuto = parser.SheetMappingAuto
	// SheetMappingPositional maps the i-th declared sheet to
	// xl/worksheets/sheet{i}.xml. This is an approximation: it is wrong for
	// workbooks whose sheets were reordered or deleted.
	SheetMappingPositional = parser.SheetMappingPositional
)

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction mode (light, standard, verbose).
	Mode Mode
	// SheetMapping specifies how sheets are located (default: auto).
	SheetMapping SheetMapping
	// Sheets restricts extraction to the named sheets. Empty means all.
	Sheets []string
	// IncludeLinks specifies whether to include cell hyperlinks.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeLinks *bool
	// IncludePrintAreas specifies whether to include print areas.
	// If nil, defaults to false for light mode, true otherwise.
	IncludePrintAreas *bool
	// KeepLineBreaks emits "\n" for line breaks inside document paragraphs.
	KeepLineBreaks bool
	// Logger receives debug and warning records. Defaults to slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode:         ModeStandard,
		SheetMapping: SheetMappingAuto,
	}
}

func (o *Options) defaults() {
	if o.Mode == "" {
		o.Mode = ModeStandard
	}
	if o.SheetMapping == "" {
		o.SheetMapping = SheetMappingAuto
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// ShouldIncludeLinks returns whether to include cell hyperlinks.
func (o Options) ShouldIncludeLinks() bool {
	if o.IncludeLinks != nil {
		return *o.IncludeLinks
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludePrintAreas returns whether to include print areas.
func (o Options) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return o.Mode != ModeLight
}

// ShouldIncludeFormulas returns whether formulas are attached to cells.
func (o Options) ShouldIncludeFormulas() bool {
	return o.Mode != ModeLight
}

// ShouldDetectTables returns whether table candidates are computed.
func (o Options) ShouldDetectTables() bool {
	return o.Mode != ModeLight
}

// ShouldIncludeSharedStrings returns whether the shared-string table is
// copied into the result.
func (o Options) ShouldIncludeSharedStrings() bool {
	return o.Mode == ModeVerbose
}

func (o Options) wantsSheet(name string) bool {
	if len(o.Sheets) == 0 {
		return true
	}
	for _, s := range o.Sheets {
		if s == name {
			return true
		}
	}
	return false
}

// ParseMode converts a mode name to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeLight, ModeStandard, ModeVerbose:
		return Mode(s), true
	}
	return "", false
}
