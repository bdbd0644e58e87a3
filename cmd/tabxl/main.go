// Package main provides the tabxl command line interface.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hmtbr/tabxl/pkg/tabxl"
	"github.com/hmtbr/tabxl/pkg/tabxl/book"
	"github.com/hmtbr/tabxl/pkg/tabxl/logging"
	"github.com/hmtbr/tabxl/pkg/tabxl/pattern"
	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

var (
	outputPath string
	configPath string
	sheetName  string
	indexCols  int
	headerRows int
	withDoc    bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabxl",
		Short: "Render hierarchical tables to spreadsheets",
	}

	renderCmd := &cobra.Command{
		Use:   "render [input.csv]",
		Short: "Render a CSV table to a styled xlsx workbook",
		Long: `render reads a CSV file whose leading rows and columns carry the
hierarchical column and row keys, renders it with merged key spans and
hierarchy borders, and writes an xlsx workbook.`,
		Args: cobra.ExactArgs(1),
		RunE: runRender,
	}

	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input name with .xlsx)")
	renderCmd.Flags().StringVar(&configPath, "config", "", "YAML render configuration")
	renderCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: input file name)")
	renderCmd.Flags().IntVar(&indexCols, "index-cols", 1, "Leading columns forming the row keys")
	renderCmd.Flags().IntVar(&headerRows, "header-rows", 1, "Leading rows forming the column keys")
	renderCmd.Flags().BoolVar(&withDoc, "doc", false, "Add a documentation sheet")
	renderCmd.Flags().BoolVar(&verbose, "verbose", false, "Log render details to stderr")

	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// renderConfig is the YAML render configuration. Unknown fields are
// rejected; flags override the shape and sheet fields.
type renderConfig struct {
	Sheet          string       `yaml:"sheet"`
	Title          string       `yaml:"title"`
	Caption        string       `yaml:"caption"`
	TabColor       string       `yaml:"tab_color"`
	IndexCols      int          `yaml:"index_cols"`
	HeaderRows     int          `yaml:"header_rows"`
	Group          int          `yaml:"group"`
	NA             string       `yaml:"na"`
	NumberFormat   string       `yaml:"number_format"`
	MinBorderLevel *int         `yaml:"min_border_level"`
	Freeze         bool         `yaml:"freeze"`
	Filter         bool         `yaml:"filter"`
	Autosize       bool         `yaml:"autosize"`
	ShowGrid       bool         `yaml:"show_grid"`
	RowFormats     []formatRule `yaml:"row_formats"`
	ColFormats     []formatRule `yaml:"col_formats"`
	RowBorders     []keyPattern `yaml:"row_borders"`
	ColBorders     []keyPattern `yaml:"col_borders"`
	Doc            docConfig    `yaml:"doc"`
}

type docConfig struct {
	Title   string `yaml:"title"`
	Purpose string `yaml:"purpose"`
	Method  string `yaml:"method"`
}

type formatRule struct {
	Pattern keyPattern `yaml:"pattern"`
	Format  string     `yaml:"format"`
}

// keyPattern decodes a YAML scalar into a scalar key and a sequence into
// a tuple key. Components keep their literal text, matching the string
// labels a CSV table carries.
type keyPattern struct {
	key table.Key
}

func (p *keyPattern) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		v, err := nodeLabel(node)
		if err != nil {
			return err
		}
		p.key = table.Scalar(v)
		return nil
	case yaml.SequenceNode:
		parts := make([]any, len(node.Content))
		for i, n := range node.Content {
			v, err := nodeLabel(n)
			if err != nil {
				return err
			}
			parts[i] = v
		}
		p.key = table.Tuple(parts...)
		return nil
	}
	return fmt.Errorf("line %d: pattern must be a scalar or a sequence", node.Line)
}

func nodeLabel(n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: pattern component must be a scalar", n.Line)
	}
	if n.Tag == "!!null" {
		return nil, nil
	}
	return n.Value, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if _, err := os.Stat(inputPath); err != nil {
		return fmt.Errorf("input: %w", err)
	}

	cfg := renderConfig{IndexCols: 1, HeaderRows: 1}
	if configPath != "" {
		if err := loadConfig(configPath, &cfg); err != nil {
			return fmt.Errorf("config %s: %w", configPath, err)
		}
	}
	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Sheet = sheetName
	}
	if flags.Changed("index-cols") {
		cfg.IndexCols = indexCols
	}
	if flags.Changed("header-rows") {
		cfg.HeaderRows = headerRows
	}
	if cfg.Sheet == "" {
		cfg.Sheet = baseName(inputPath)
	}
	if cfg.IndexCols < 1 || cfg.HeaderRows < 1 {
		return fmt.Errorf("index-cols and header-rows must be at least 1")
	}

	var logger logging.Logger = logging.NewNoOpLogger()
	if verbose {
		std := logging.New()
		std.SetLevel(logging.Debug)
		logger = std
	}

	tbl, err := readTable(inputPath, cfg.IndexCols, cfg.HeaderRows)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	wb := book.New()
	defer wb.Close()
	wb.Add(&book.TableSheet{
		Name:     cfg.Sheet,
		Table:    tbl,
		Opts:     buildOptions(cfg, logger),
		Title:    cfg.Title,
		Caption:  cfg.Caption,
		TabColor: cfg.TabColor,
		Freeze:   cfg.Freeze,
		Filter:   cfg.Filter,
		Autosize: cfg.Autosize,
		ShowGrid: cfg.ShowGrid,
	})
	if withDoc {
		wb.Add(docSheet(cfg, inputPath))
	}
	if err := wb.Render(); err != nil {
		return err
	}

	out := outputPath
	if out == "" {
		out = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".xlsx"
	}
	if err := wb.SaveAs(out); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	logger.Info("wrote %s", out)
	return nil
}

func loadConfig(path string, cfg *renderConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// readTable reads a CSV file into a table: the leading headerRows rows
// become the column keys, the leading indexCols columns the row keys, and
// the remaining cells the data block. The index-column cells of the last
// header row, when filled, become the row level names.
func readTable(path string, indexCols, headerRows int) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) <= headerRows {
		return nil, fmt.Errorf("%d records leave no data below %d header rows", len(records), headerRows)
	}
	if len(records[0]) <= indexCols {
		return nil, fmt.Errorf("%d columns leave no data beside %d index columns", len(records[0]), indexCols)
	}

	width := len(records[0]) - indexCols
	cols := make([]table.Key, width)
	for j := range cols {
		cols[j] = headerKey(records[:headerRows], indexCols+j)
	}

	names := make([]any, indexCols)
	hasNames := false
	for c := 0; c < indexCols; c++ {
		if v := records[headerRows-1][c]; v != "" {
			names[c] = v
			hasNames = true
		}
	}

	rows := make([]table.Key, 0, len(records)-headerRows)
	cells := make([][]any, 0, len(records)-headerRows)
	for _, rec := range records[headerRows:] {
		rows = append(rows, indexKey(rec, indexCols))
		vals := make([]any, width)
		for j := 0; j < width; j++ {
			vals[j] = parseValue(rec[indexCols+j])
		}
		cells = append(cells, vals)
	}

	axis := table.Axis{Keys: rows}
	if hasNames {
		axis.Names = names
	}
	return table.New(axis, table.Axis{Keys: cols}, cells)
}

func headerKey(header [][]string, col int) table.Key {
	if len(header) == 1 {
		return table.Scalar(header[0][col])
	}
	parts := make([]any, len(header))
	for i, rec := range header {
		parts[i] = rec[col]
	}
	return table.Tuple(parts...)
}

func indexKey(rec []string, indexCols int) table.Key {
	if indexCols == 1 {
		return table.Scalar(rec[0])
	}
	parts := make([]any, indexCols)
	for c := 0; c < indexCols; c++ {
		parts[c] = rec[c]
	}
	return table.Tuple(parts...)
}

// parseValue turns a CSV cell into a typed value: empty stays missing,
// numeric-looking text becomes a float, anything else stays text.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func buildOptions(cfg renderConfig, logger logging.Logger) tabxl.Options {
	opts := tabxl.DefaultOptions()
	opts.GroupLevels = cfg.Group
	opts.NA = cfg.NA
	opts.NumberFormat = cfg.NumberFormat
	opts.MinBorderLevel = cfg.MinBorderLevel
	opts.Logger = logger
	for _, r := range cfg.RowFormats {
		opts.RowNumberFormats = append(opts.RowNumberFormats, pattern.Rule[string]{Pattern: r.Pattern.key, Value: r.Format})
	}
	for _, r := range cfg.ColFormats {
		opts.ColNumberFormats = append(opts.ColNumberFormats, pattern.Rule[string]{Pattern: r.Pattern.key, Value: r.Format})
	}
	for _, p := range cfg.RowBorders {
		opts.RowBorders = append(opts.RowBorders, p.key)
	}
	for _, p := range cfg.ColBorders {
		opts.ColBorders = append(opts.ColBorders, p.key)
	}
	return opts
}

func docSheet(cfg renderConfig, inputPath string) *book.DocSheet {
	title := cfg.Doc.Title
	if title == "" {
		title = cfg.Sheet
	}
	desc := cfg.Title
	if desc == "" {
		desc = "rendered from " + filepath.Base(inputPath)
	}
	return &book.DocSheet{
		Title:   title,
		Purpose: cfg.Doc.Purpose,
		Method:  cfg.Doc.Method,
		Sources: []book.DocEntry{{Name: baseName(inputPath), Description: inputPath}},
		Script:  strings.Join(os.Args, " "),
		Entries: []book.DocEntry{{Name: cfg.Sheet, Description: desc}},
	}
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
