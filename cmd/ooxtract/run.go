package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/ooxtract-go/pkg/ooxtract"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/models"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/opc"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract/output"
)

func (a *app) runAuto(cmd *cobra.Command, args []string) error {
	opts := a.options()
	outs, err := a.extractAll(args, func(_ int, path string) ([]byte, error) {
		res, err := ooxtract.Extract(path, opts)
		if err != nil {
			return nil, err
		}
		if a.cfg.Format == "text" {
			if res.Workbook != nil {
				return a.workbookText(res.Workbook), nil
			}
			return output.DocumentText(res.Document), nil
		}
		return a.render(res)
	})
	return a.finish(cmd, args, outs, err, true)
}

func (a *app) runWorkbook(cmd *cobra.Command, args []string) error {
	opts := a.options()
	sheetDirs := bookDirs(a.sheetsDir, args)
	areaDirs := bookDirs(a.printAreasDir, args)
	outs, err := a.extractAll(args, func(i int, path string) ([]byte, error) {
		wb, err := ooxtract.ExtractWorkbook(path, opts)
		if err != nil {
			return nil, err
		}
		if a.sheetsDir != "" {
			if err := a.writeSheetFiles(wb, sheetDirs[i]); err != nil {
				return nil, fmt.Errorf("failed to write sheet files: %w", err)
			}
		}
		if a.printAreasDir != "" {
			if err := a.writePrintAreaFiles(wb, areaDirs[i]); err != nil {
				return nil, fmt.Errorf("failed to write print area files: %w", err)
			}
		}
		if a.cfg.Format == "text" {
			return a.workbookText(wb), nil
		}
		return a.render(wb)
	})
	// Per-sheet and per-area files replace stdout unless -o is given.
	toStdout := a.sheetsDir == "" && a.printAreasDir == ""
	return a.finish(cmd, args, outs, err, toStdout)
}

func (a *app) runDocument(cmd *cobra.Command, args []string) error {
	opts := a.options()
	outs, err := a.extractAll(args, func(_ int, path string) ([]byte, error) {
		doc, err := ooxtract.ExtractDocument(path, opts)
		if err != nil {
			return nil, err
		}
		if a.cfg.Format == "text" {
			return output.DocumentText(doc), nil
		}
		return a.render(doc)
	})
	return a.finish(cmd, args, outs, err, true)
}

func (a *app) runStrings(cmd *cobra.Command, args []string) error {
	table, err := ooxtract.SharedStrings(args[0])
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	var data []byte
	if a.cfg.Format == "text" {
		data = output.StringsText(table)
	} else if data, err = a.render(table); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return a.finish(cmd, args, [][]byte{data}, nil, true)
}

func (a *app) runParts(cmd *cobra.Command, args []string) error {
	pkg, err := opc.Open(args[0])
	if err != nil {
		return err
	}
	defer pkg.Close()

	names := pkg.List()
	var data []byte
	if a.cfg.Format == "text" {
		data = []byte(strings.Join(names, "\n") + "\n")
	} else if data, err = a.render(names); err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return a.finish(cmd, args, [][]byte{data}, nil, true)
}

// extractAll runs fn for every path, at most cfg.Workers at a time, and
// returns the outputs in argument order. A failed path leaves a nil output
// and is reported in the joined error; the other paths still run.
func (a *app) extractAll(paths []string, fn func(i int, path string) ([]byte, error)) ([][]byte, error) {
	outs := make([][]byte, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(a.cfg.Workers)
	for i, path := range paths {
		i, path := i, path // per-iteration copies (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			a.logger.Debug("extracting", "path", path)
			out, err := fn(i, path)
			if err != nil {
				a.logger.Error("extraction failed", "path", path, "error", err)
				errs[i] = fmt.Errorf("%s: %w", path, err)
				return nil
			}
			outs[i] = out
			return nil
		})
	}
	_ = g.Wait()

	return outs, errors.Join(errs...)
}

// finish writes the outputs to -o or stdout and returns runErr. Several
// inputs rendered as text get a heading per file.
func (a *app) finish(cmd *cobra.Command, paths []string, outs [][]byte, runErr error, toStdout bool) error {
	var buf bytes.Buffer
	for i, out := range outs {
		if out == nil {
			continue
		}
		if len(paths) > 1 && a.cfg.Format == "text" {
			fmt.Fprintf(&buf, "=== %s ===\n", paths[i])
		}
		buf.Write(out)
		if !bytes.HasSuffix(out, []byte("\n")) {
			buf.WriteByte('\n')
		}
	}

	if a.outputPath != "" {
		if err := os.WriteFile(a.outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if toStdout {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return runErr
}

// render serializes v in the configured structured format.
func (a *app) render(v any) ([]byte, error) {
	if a.cfg.Format == "yaml" {
		return output.ToYAML(v)
	}
	return output.ToJSON(v, a.cfg.Pretty)
}

func (a *app) workbookText(wb *models.Workbook) []byte {
	return output.WorkbookText(wb, output.TextOptions{
		MaxRows:    a.cfg.MaxRows,
		TagNumbers: a.cfg.TagNumbers,
	})
}
