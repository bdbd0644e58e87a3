// Package writer turns tables into sink calls: header and index values,
// axis names, data cells, merges, and borders, in a fixed order. The
// geometry comes from the layout package; this package only decides what
// to write where and with which style.
package writer

import (
	"fmt"

	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
	"github.com/hmtbr/tabxl/pkg/tabxl/layout"
	"github.com/hmtbr/tabxl/pkg/tabxl/logging"
	"github.com/hmtbr/tabxl/pkg/tabxl/pattern"
	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

// TableWriter renders one table into a sink.
type TableWriter struct {
	t    *table.Table
	lay  *layout.TableLayout
	sink grid.Sink
	cfg  Config

	// Pattern rules resolved to per-position values, once, up front.
	rowFormats []*string
	colFormats []*string
	rowBorders []bool
	colBorders []bool
}

// New prepares a writer for one table. The table's axes must satisfy
// their invariants; pattern rules are resolved to positions here so
// WriteAll only walks the layout.
func New(t *table.Table, sink grid.Sink, cfg Config) (*TableWriter, error) {
	if err := t.Rows.Validate(); err != nil {
		return nil, fmt.Errorf("row axis: %w", err)
	}
	if err := t.Cols.Validate(); err != nil {
		return nil, fmt.Errorf("column axis: %w", err)
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NewNoOpLogger()
	}
	w := &TableWriter{
		t:    t,
		lay:  layout.FromTable(t, cfg.Origin),
		sink: sink,
		cfg:  cfg,
	}
	w.resolvePatterns()
	return w, nil
}

func (w *TableWriter) resolvePatterns() {
	m := w.cfg.Matcher
	w.rowFormats = pattern.PositionMap(m, w.t.Rows.Keys, w.cfg.RowFormats)
	w.colFormats = pattern.PositionMap(m, w.t.Cols.Keys, w.cfg.ColFormats)
	w.rowBorders = pattern.Flags(m, w.t.Rows.Keys, w.cfg.RowBorders)
	w.colBorders = pattern.Flags(m, w.t.Cols.Keys, w.cfg.ColBorders)
}

// Layout returns the computed placement of the table rectangle.
func (w *TableWriter) Layout() *layout.TableLayout {
	return w.lay
}

// Table returns the table being written. For a grouped writer this is the
// render table, synthetic header rows included.
func (w *TableWriter) Table() *table.Table {
	return w.t
}

// WriteAll renders the whole table: column headers, index values, axis
// names, data, then merges, then borders. Merge conflicts are skipped
// with a debug log entry; every other failure aborts wrapped in a
// StageError naming the stage.
func (w *TableWriter) WriteAll() error {
	if err := w.writeColumnHeaders(); err != nil {
		return err
	}
	if err := w.writeIndexValues(); err != nil {
		return err
	}
	if err := w.writeColumnNames(); err != nil {
		return err
	}
	if err := w.writeIndexNames(); err != nil {
		return err
	}
	if err := w.writeData(); err != nil {
		return err
	}
	if err := w.applyMerges(); err != nil {
		return err
	}
	return w.applyBorders()
}

func (w *TableWriter) writeColumnHeaders() error {
	reg := w.lay.Columns
	for j, k := range w.t.Cols.Keys {
		for level := 0; level < reg.Height; level++ {
			var value any
			if k.IsTuple() {
				value = k.Level(level)
			} else {
				// A scalar key only fills level 0.
				if level > 0 {
					continue
				}
				value = k.Level(0)
			}
			row, col := reg.Cell(j, level).RowCol()
			if err := w.writeCell(row, col, value, w.cfg.Presets.Columns, nil); err != nil {
				return NewStageError("column headers", err)
			}
		}
	}
	return nil
}

func (w *TableWriter) writeIndexValues() error {
	reg := w.lay.Index
	for i, k := range w.t.Rows.Keys {
		for level := 0; level < reg.Width; level++ {
			var value any
			if k.IsTuple() {
				value = k.Level(level)
			} else {
				if level > 0 {
					continue
				}
				value = k.Level(0)
			}
			row, col := reg.Cell(level, i).RowCol()
			if err := w.writeCell(row, col, value, w.cfg.Presets.Index, nil); err != nil {
				return NewStageError("index values", err)
			}
		}
	}
	return nil
}

func (w *TableWriter) writeColumnNames() error {
	reg := w.lay.ColumnNames
	if reg.Empty() {
		return nil
	}
	for level := 0; level < reg.Height; level++ {
		name := w.t.Cols.Name(level)
		if name == nil {
			continue
		}
		row, col := reg.Cell(0, level).RowCol()
		if err := w.writeCell(row, col, name, w.cfg.Presets.ColumnNames, nil); err != nil {
			return NewStageError("column names", err)
		}
	}
	return nil
}

func (w *TableWriter) writeIndexNames() error {
	reg := w.lay.IndexNames
	if reg.Empty() {
		return nil
	}
	for level := 0; level < reg.Width; level++ {
		name := w.t.Rows.Name(level)
		if name == nil {
			continue
		}
		row, col := reg.Cell(level, 0).RowCol()
		if err := w.writeCell(row, col, name, w.cfg.Presets.IndexNames, nil); err != nil {
			return NewStageError("index names", err)
		}
	}
	return nil
}

func (w *TableWriter) writeData() error {
	reg := w.lay.Data
	for i := 0; i < reg.Height; i++ {
		for j := 0; j < reg.Width; j++ {
			row, col := reg.Cell(j, i).RowCol()
			if err := w.writeCell(row, col, w.t.Cell(i, j), grid.Style{}, w.dataFormat(i, j)); err != nil {
				return NewStageError("data", err)
			}
		}
	}
	return nil
}

// dataFormat picks the number format for one data cell: a row match wins
// over a column match, which wins over the fallback.
func (w *TableWriter) dataFormat(i, j int) *string {
	if f := w.rowFormats[i]; f != nil {
		return f
	}
	if f := w.colFormats[j]; f != nil {
		return f
	}
	if w.cfg.NumberFormat != "" {
		f := w.cfg.NumberFormat
		return &f
	}
	return nil
}

// writeCell writes one value with its style and, for numeric values, its
// number format. Missing values are written as the NA representation.
func (w *TableWriter) writeCell(row, col int, value any, style grid.Style, format *string) error {
	if table.IsMissing(value) {
		value = w.cfg.NA
	}
	if err := w.sink.SetCell(row, col, value); err != nil {
		return err
	}
	if !style.IsZero() {
		if err := w.sink.ApplyStyle(row, col, style); err != nil {
			return err
		}
	}
	if format != nil && *format != "" && isNumeric(value) {
		return w.sink.ApplyStyle(row, col, grid.Style{NumberFormat: *format})
	}
	return nil
}

func (w *TableWriter) applyMerges() error {
	ranges, err := layout.AllMerges(w.t, w.lay)
	if err != nil {
		return NewStageError("merges", err)
	}
	if err := ApplyMerges(w.sink, ranges, w.cfg.Logger); err != nil {
		return NewStageError("merges", err)
	}
	return nil
}

func (w *TableWriter) applyBorders() error {
	rowSpans, err := layout.SpansByLevel(w.t.Rows.Keys, -1)
	if err != nil {
		return NewStageError("borders", err)
	}
	colSpans, err := layout.SpansByLevel(w.t.Cols.Keys, -1)
	if err != nil {
		return NewStageError("borders", err)
	}
	return w.applyBorderEdges(rowSpans, colSpans)
}

// applyBorderEdges draws the border families in a fixed order: the two
// region separators, then level separators on both axes, then custom
// pattern borders.
func (w *TableWriter) applyBorderEdges(rowSpans, colSpans [][]layout.Span) error {
	if err := ApplyEdges(w.sink, layout.IndexSeparator(w.lay), w.cfg.SeparatorLine); err != nil {
		return NewStageError("borders", err)
	}
	if err := ApplyEdges(w.sink, layout.HeaderSeparator(w.lay), w.cfg.SeparatorLine); err != nil {
		return NewStageError("borders", err)
	}
	if err := ApplyEdges(w.sink, layout.LevelEdges(w.lay, rowSpans, layout.Rows, w.cfg.MinBorderLevel), w.cfg.LevelLine); err != nil {
		return NewStageError("borders", err)
	}
	if err := ApplyEdges(w.sink, layout.LevelEdges(w.lay, colSpans, layout.Cols, w.cfg.MinBorderLevel), w.cfg.LevelLine); err != nil {
		return NewStageError("borders", err)
	}
	if err := ApplyEdges(w.sink, layout.FlagEdges(w.lay, w.rowBorders, w.colBorders), w.cfg.LevelLine); err != nil {
		return NewStageError("borders", err)
	}
	return nil
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}
