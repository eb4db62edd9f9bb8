package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/models"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/output"
)

// bookDirs returns the directory for each input's per-sheet files. Batch
// runs get one subdirectory per workbook so sheet names cannot collide;
// inputs sharing a file name are told apart by their argument position.
func bookDirs(dir string, paths []string) []string {
	dirs := make([]string, len(paths))
	if len(paths) <= 1 {
		for i := range dirs {
			dirs[i] = dir
		}
		return dirs
	}

	stems := make([]string, len(paths))
	seen := make(map[string]int, len(paths))
	for i, path := range paths {
		base := filepath.Base(path)
		stems[i] = strings.TrimSuffix(base, filepath.Ext(base))
		seen[stems[i]]++
	}
	for i, stem := range stems {
		if seen[stem] > 1 {
			stem = fmt.Sprintf("%s_%d", stem, i+1)
		}
		dirs[i] = filepath.Join(dir, stem)
	}
	return dirs
}

func (a *app) writeSheetFiles(wb *models.Workbook, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		data, err := a.renderSheet(sheet)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, safeFileName(sheet.Name)+a.fileExt())
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) writePrintAreaFiles(wb *models.Workbook, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range wb.Sheets {
		sheet := &wb.Sheets[i]
		for j, area := range sheet.PrintAreas {
			view := models.NewPrintAreaView(wb.BookName, sheet, area)
			data, err := a.renderPrintArea(&view)
			if err != nil {
				return err
			}

			filename := filepath.Join(dir, fmt.Sprintf("%s_area%d%s", safeFileName(sheet.Name), j+1, a.fileExt()))
			if err := os.WriteFile(filename, data, 0644); err != nil {
				return err
			}
		}
	}

	return nil
}

func (a *app) renderSheet(sheet *models.Sheet) ([]byte, error) {
	switch a.cfg.Format {
	case "yaml":
		return output.ToYAML(sheet)
	case "text":
		return a.workbookText(&models.Workbook{Sheets: []models.Sheet{*sheet}}), nil
	}
	return output.SheetToJSON(sheet, a.cfg.Pretty)
}

func (a *app) renderPrintArea(view *models.PrintAreaView) ([]byte, error) {
	switch a.cfg.Format {
	case "yaml":
		return output.ToYAML(view)
	case "text":
		sheet := models.Sheet{Name: view.SheetName, Rows: view.Rows}
		return a.workbookText(&models.Workbook{Sheets: []models.Sheet{sheet}}), nil
	}
	return output.PrintAreaViewToJSON(view, a.cfg.Pretty)
}

func (a *app) fileExt() string {
	switch a.cfg.Format {
	case "yaml":
		return ".yaml"
	case "text":
		return ".txt"
	}
	return ".json"
}

// safeFileName replaces characters that are not allowed in file names on
// common platforms. Sheet names cannot contain most of them, but '"', '<',
// '>' and '|' are legal in Excel.
func safeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
