package ooxtract

import (
	"log/slog"
	"path/filepath"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/models"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/opc"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/parser"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/xmltree"
)

// ExtractWorkbook extracts sheets, rows and cells from a spreadsheet package.
//
// Container failures and a missing or malformed xl/workbook.xml are returned
// as errors. Failures scoped to one sheet are recorded on that sheet and do
// not stop the others; unresolvable shared-string references degrade to
// "STR#<index>" placeholders.
func ExtractWorkbook(path string, opts Options) (*models.Workbook, error) {
	opts.defaults()

	pkg, err := opc.Open(path)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	return extractWorkbook(pkg, filepath.Base(path), opts)
}

// ExtractDocument extracts the paragraphs of a word-processing package.
func ExtractDocument(path string, opts Options) (*models.Document, error) {
	opts.defaults()

	pkg, err := opc.Open(path)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	return extractDocument(pkg, filepath.Base(path), opts)
}

// SharedStrings returns the shared-string table of a spreadsheet package.
// A package without xl/sharedStrings.xml yields an empty table.
func SharedStrings(path string) ([]string, error) {
	pkg, err := opc.Open(path)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	sst, err := parser.LoadSharedStrings(pkg)
	if err != nil {
		return nil, NewExtractionError("", "shared_strings", err)
	}
	return sst, nil
}

func extractWorkbook(pkg parser.PartReader, bookName string, opts Options) (*models.Workbook, error) {
	log := opts.Logger.With("book", bookName)

	wbRoot, err := parser.ReadXML(pkg, parser.PartWorkbook)
	if err != nil {
		return nil, NewExtractionError("", "workbook", err)
	}
	info := parser.ParseWorkbook(wbRoot)

	wb := &models.Workbook{
		BookName: bookName,
		Sheets:   []models.Sheet{},
	}

	sst, err := parser.LoadSharedStrings(pkg)
	if err != nil {
		log.Warn("shared strings unreadable, shared cells degrade to placeholders", "error", err)
		wb.Warnings = append(wb.Warnings, NewExtractionError("", "shared_strings", err).Error())
	}
	log.Debug("loaded shared strings", "count", len(sst))
	if opts.ShouldIncludeSharedStrings() {
		wb.SharedStrings = sst
	}

	var rels map[string]parser.Relationship
	if opts.SheetMapping != SheetMappingPositional && pkg.Has(parser.PartWorkbookRels) {
		root, err := parser.ReadXML(pkg, parser.PartWorkbookRels)
		if err != nil {
			log.Warn("workbook relationships unreadable, using positional sheet mapping", "error", err)
			wb.Warnings = append(wb.Warnings, NewExtractionError("", "relationships", err).Error())
		} else {
			rels = parser.ParseRelationships(root)
		}
	}

	var printAreas map[string][]models.PrintArea
	if opts.ShouldIncludePrintAreas() {
		printAreas = parser.ExtractPrintAreas(info)
	}

	for _, entry := range info.Sheets {
		if !opts.wantsSheet(entry.Name) {
			continue
		}
		sheet := extractSheet(pkg, entry, rels, sst, opts, log)
		if !sheet.Failed() {
			sheet.PrintAreas = printAreas[entry.Name]
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

func extractSheet(pkg parser.PartReader, entry parser.SheetEntry, rels map[string]parser.Relationship,
	sst parser.SharedStrings, opts Options, log *slog.Logger) models.Sheet {
	loc := parser.MapSheet(entry, rels, opts.SheetMapping)
	sheet := models.Sheet{
		Name:    entry.Name,
		Index:   entry.Index,
		State:   entry.State,
		Part:    loc.Part,
		Mapping: loc.Mapping,
	}
	if loc.Type != "worksheet" {
		sheet.Type = loc.Type
	}

	log = log.With("sheet", entry.Name, "part", loc.Part)
	log.Debug("mapped sheet", "mapping", loc.Mapping, "type", loc.Type)
	if !loc.HasCells() {
		return sheet
	}

	root, err := parser.ReadXML(pkg, loc.Part)
	if err != nil {
		log.Warn("sheet not extracted", "error", err)
		sheet.SetErr(NewExtractionError(entry.Name, "cells", err))
		return sheet
	}

	cells := parser.DecodeWorksheet(root, sst, parser.CellOptions{
		SkipFormulas: !opts.ShouldIncludeFormulas(),
	})
	sheet.Rows = cells.Rows
	sheet.Placeholders = len(cells.DecodeErrors)
	for _, de := range cells.DecodeErrors {
		log.Warn("cell value degraded to placeholder", "ref", de.Ref, "error", de.Err)
	}

	if opts.ShouldDetectTables() {
		sheet.TableCandidates = parser.DetectTables(cells.Rows, parser.DefaultTableParams())
	}
	if opts.ShouldIncludeLinks() {
		sheet.Links = extractLinks(pkg, root, loc.Part, log)
	}

	return sheet
}

// extractLinks reads hyperlinks of a worksheet. A missing or unreadable
// sheet relationships part only loses the external targets.
func extractLinks(pkg parser.PartReader, sheetRoot *xmltree.Node, part string, log *slog.Logger) map[string]string {
	if sheetRoot.Find("hyperlink") == nil {
		return nil
	}

	var rels map[string]parser.Relationship
	relsPart := parser.RelsPartFor(part)
	if pkg.Has(relsPart) {
		root, err := parser.ReadXML(pkg, relsPart)
		if err != nil {
			log.Warn("sheet relationships unreadable", "part", relsPart, "error", err)
		} else {
			rels = parser.ParseRelationships(root)
		}
	}

	links := parser.ExtractHyperlinks(sheetRoot, part, rels)
	if len(links) == 0 {
		return nil
	}
	return links
}

func extractDocument(pkg parser.PartReader, bookName string, opts Options) (*models.Document, error) {
	root, err := parser.ReadXML(pkg, parser.PartDocument)
	if err != nil {
		return nil, NewExtractionError("", "document", err)
	}

	paras := parser.ParseDocument(root, parser.DocumentOptions{
		KeepLineBreaks: opts.KeepLineBreaks,
	})
	opts.Logger.Debug("extracted document", "book", bookName, "paragraphs", len(paras))

	return &models.Document{
		BookName:   bookName,
		Paragraphs: paras,
	}, nil
}
