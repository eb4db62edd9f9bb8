// Package main provides the CLI entry point for ooxtract.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/ooxtract-go/internal/config"
	"github.com/ukaji3/ooxtract-go/pkg/ooxtract"
)

// app holds flag values and the configuration resolved for one run.
type app struct {
	configPath string
	logLevel   string
	outputPath string
	format     string
	pretty     bool

	mode          string
	positional    bool
	maxRows       int
	sheets        []string
	tagNumbers    bool
	sheetsDir     string
	printAreasDir string
	lineBreaks    bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "ooxtract [FILE...]",
		Short: "Extract text and cell values from .xlsx and .docx files",
		Long: `ooxtract reads Office Open XML packages directly and prints their
sheets, rows and cells (spreadsheets) or paragraphs (documents) as JSON,
YAML or a plain text report. The format is detected per file.`,
		Args:              cobra.MinimumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runAuto,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default: warn)")
	pf.StringVarP(&a.outputPath, "output", "o", "", "Output file path (default: stdout)")
	pf.StringVar(&a.format, "format", "", "Output format: json, yaml, text (default: json)")
	pf.BoolVar(&a.pretty, "pretty", false, "Pretty-print JSON output")

	a.addWorkbookFlags(rootCmd)
	a.addDocumentFlags(rootCmd)

	xlsxCmd := &cobra.Command{
		Use:   "xlsx FILE...",
		Short: "Extract sheets, rows and cells from spreadsheets",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runWorkbook,
	}
	a.addWorkbookFlags(xlsxCmd)
	xlsxCmd.Flags().StringVar(&a.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	xlsxCmd.Flags().StringVar(&a.printAreasDir, "print-areas-dir", "", "Directory for per-print-area output files")

	docxCmd := &cobra.Command{
		Use:   "docx FILE...",
		Short: "Extract paragraphs from word-processing documents",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runDocument,
	}
	a.addDocumentFlags(docxCmd)

	stringsCmd := &cobra.Command{
		Use:   "strings FILE",
		Short: "Dump the shared-string table of a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runStrings,
	}

	partsCmd := &cobra.Command{
		Use:   "parts FILE",
		Short: "List the parts of a package",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runParts,
	}

	rootCmd.AddCommand(xlsxCmd, docxCmd, stringsCmd, partsCmd)
	return rootCmd
}

func (a *app) addWorkbookFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&a.mode, "mode", "", "Extraction mode: light, standard, verbose (default: standard)")
	f.BoolVar(&a.positional, "positional", false, "Map sheets to xl/worksheets/sheet{i}.xml without reading relationships")
	f.IntVar(&a.maxRows, "max-rows", 0, "Rows printed per sheet in text format (0: all)")
	f.StringArrayVar(&a.sheets, "sheet", nil, "Only extract the named sheet (repeatable)")
	f.BoolVar(&a.tagNumbers, "tag-numbers", false, "Prefix numeric values with NUM: in text format")
}

func (a *app) addDocumentFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.lineBreaks, "line-breaks", false, "Keep line breaks inside paragraphs")
}

// setup resolves configuration: defaults, then the config file and
// environment, then flags given on the command line.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("pretty") {
		cfg.Pretty = a.pretty
	}
	if flags.Changed("mode") {
		cfg.Mode = a.mode
	}
	if flags.Changed("positional") {
		cfg.SheetMapping = string(ooxtract.SheetMappingAuto)
		if a.positional {
			cfg.SheetMapping = string(ooxtract.SheetMappingPositional)
		}
	}
	if flags.Changed("max-rows") {
		cfg.MaxRows = a.maxRows
	}
	if flags.Changed("tag-numbers") {
		cfg.TagNumbers = a.tagNumbers
	}
	if flags.Changed("line-breaks") {
		cfg.LineBreaks = a.lineBreaks
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := cfg.Level()
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.cfg = cfg
	return nil
}

func (a *app) options() ooxtract.Options {
	opts := a.cfg.Options(a.logger)
	opts.Sheets = a.sheets
	return opts
}
