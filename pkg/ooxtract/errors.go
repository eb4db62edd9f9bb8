package ooxtract

import (
	"errors"
	"fmt"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/opc"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/parser"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/xmltree"
)

var (
	// ErrPackageNotFound indicates the input path does not exist.
	ErrPackageNotFound = opc.ErrPackageNotFound

	// ErrPackageCorrupt indicates the input is not a valid ZIP container.
	ErrPackageCorrupt = opc.ErrPackageCorrupt

	// ErrEncryptedPackage indicates a password-protected package. It matches
	// ErrPackageCorrupt as well.
	ErrEncryptedPackage = opc.ErrEncryptedPackage

	// ErrLegacyFormat indicates a pre-2007 binary document. It matches
	// ErrPackageCorrupt as well.
	ErrLegacyFormat = opc.ErrLegacyFormat

	// ErrPartMissing indicates a required part is absent from the package.
	ErrPartMissing = opc.ErrPartMissing

	// ErrXMLMalformed indicates a part is not well-formed XML.
	ErrXMLMalformed = xmltree.ErrMalformed

	// ErrCellDecode matches per-cell decode failures.
	ErrCellDecode = parser.ErrCellDecode

	// ErrUnsupportedFormat indicates the package is neither a spreadsheet
	// nor a word-processing document.
	ErrUnsupportedFormat = errors.New("unsupported package format")
)

// CellDecodeError reports a cell that degraded to a placeholder value.
type CellDecodeError = parser.CellDecodeError

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // "workbook", "shared_strings", "relationships", "cells", "hyperlinks", "document"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("extraction error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
