package ooxtract

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/models"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/opc"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/parser"
)

// Format identifies a package type.
type Format string

const (
	FormatSpreadsheet Format = "xlsx"
	FormatDocument    Format = "docx"
)

// Result holds the output of Extract. Exactly one of Workbook and Document
// is set, according to Format.
type Result struct {
	Format   Format           `json:"format" yaml:"format"`
	Workbook *models.Workbook `json:"workbook,omitempty" yaml:"workbook,omitempty"`
	Document *models.Document `json:"document,omitempty" yaml:"document,omitempty"`
}

// formatFromExt maps Office file extensions to formats.
func formatFromExt(p string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatSpreadsheet, true
	case ".docx", ".docm", ".dotx", ".dotm":
		return FormatDocument, true
	}
	return "", false
}

// Detect returns the package format, by extension first and otherwise by
// looking at the package's main part.
func Detect(p string) (Format, error) {
	if f, ok := formatFromExt(p); ok {
		return f, nil
	}

	pkg, err := opc.Open(p)
	if err != nil {
		return "", err
	}
	defer pkg.Close()

	return sniff(pkg)
}

func sniff(pkg parser.PartReader) (Format, error) {
	switch path.Base(parser.MainDocumentPart(pkg)) {
	case "workbook.xml":
		return FormatSpreadsheet, nil
	case "document.xml":
		return FormatDocument, nil
	}
	switch {
	case pkg.Has(parser.PartWorkbook):
		return FormatSpreadsheet, nil
	case pkg.Has(parser.PartDocument):
		return FormatDocument, nil
	}
	return "", ErrUnsupportedFormat
}

// Extract detects the package format and runs the matching extractor.
func Extract(p string, opts Options) (*Result, error) {
	opts.defaults()

	pkg, err := opc.Open(p)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	format, ok := formatFromExt(p)
	if !ok {
		if format, err = sniff(pkg); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	bookName := filepath.Base(p)
	res := &Result{Format: format}
	switch format {
	case FormatSpreadsheet:
		res.Workbook, err = extractWorkbook(pkg, bookName, opts)
	case FormatDocument:
		res.Document, err = extractDocument(pkg, bookName, opts)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}
