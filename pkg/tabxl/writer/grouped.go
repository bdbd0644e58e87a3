package writer

import (
	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
	"github.com/hmtbr/tabxl/pkg/tabxl/layout"
	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

// GroupedTableWriter renders a table whose outermost row levels have been
// turned into synthetic group header rows. Header rows carry the group
// label in the first index column, get their own preset and row height,
// and never fuse with neighboring data rows in spans.
type GroupedTableWriter struct {
	*TableWriter

	// headers marks the render rows that are group headers; breaks are the
	// span break positions derived from them.
	headers []bool
	breaks  []bool
}

// NewGrouped prepares a grouped writer: the table's outermost levels
// levels become header rows, data rows keep the rest.
func NewGrouped(t *table.Table, sink grid.Sink, levels int, cfg Config) (*GroupedTableWriter, error) {
	rows, err := table.GroupRows(t, levels)
	if err != nil {
		return nil, err
	}
	rt, headers := renderTable(t, rows, levels)
	w, err := New(rt, sink, cfg)
	if err != nil {
		return nil, err
	}
	g := &GroupedTableWriter{
		TableWriter: w,
		headers:     headers,
		breaks:      headerBreaks(headers),
	}
	// Header keys never take part in pattern rules; their labels could
	// otherwise collide with data-row patterns.
	for i, isHeader := range g.headers {
		if isHeader {
			g.rowFormats[i] = nil
			g.rowBorders[i] = false
		}
	}
	return g, nil
}

// Headers reports which render rows are group headers.
func (g *GroupedTableWriter) Headers() []bool {
	return g.headers
}

// renderTable builds the table actually written: header rows become keys
// padded with blanks to the remaining level count over a row of empty
// cells, data rows pass through.
func renderTable(t *table.Table, rows []table.Row, levels int) (*table.Table, []bool) {
	remaining := t.Rows.Levels() - levels
	keys := make([]table.Key, len(rows))
	cells := make([][]any, len(rows))
	headers := make([]bool, len(rows))
	for i, r := range rows {
		if r.Kind == table.GroupHeaderRow {
			keys[i] = padKey(r.Key, remaining)
			cells[i] = make([]any, t.Cols.Len())
			headers[i] = true
			continue
		}
		keys[i] = r.Key
		cells[i] = r.Cells
	}
	axis := table.Axis{Keys: keys}
	if len(t.Rows.Names) > 0 {
		axis.Names = t.Rows.Names[levels:]
	}
	return &table.Table{Rows: axis, Cols: t.Cols, Cells: cells}, headers
}

func padKey(k table.Key, remaining int) table.Key {
	if remaining <= 1 {
		return k
	}
	parts := make([]any, remaining)
	parts[0] = k.Level(0)
	return table.Tuple(parts...)
}

// headerBreaks marks every header row and its successor as span breaks, so
// a header label equal to a neighboring key value never continues its run.
func headerBreaks(headers []bool) []bool {
	breaks := make([]bool, len(headers))
	for i, h := range headers {
		if !h {
			continue
		}
		breaks[i] = true
		if i+1 < len(breaks) {
			breaks[i+1] = true
		}
	}
	return breaks
}

// WriteAll renders the grouped table in the same order as TableWriter,
// with header-aware index values, split spans, and header row heights at
// the end.
func (g *GroupedTableWriter) WriteAll() error {
	if err := g.writeColumnHeaders(); err != nil {
		return err
	}
	if err := g.writeGroupedIndexValues(); err != nil {
		return err
	}
	if err := g.writeColumnNames(); err != nil {
		return err
	}
	if err := g.writeIndexNames(); err != nil {
		return err
	}
	if err := g.writeData(); err != nil {
		return err
	}
	if err := g.applyGroupedMerges(); err != nil {
		return err
	}
	if err := g.applyGroupedBorders(); err != nil {
		return err
	}
	return g.applyHeaderHeights()
}

// writeGroupedIndexValues writes the index region, skipping blank cells
// instead of writing the NA representation and styling header labels with
// the group header preset.
func (g *GroupedTableWriter) writeGroupedIndexValues() error {
	reg := g.lay.Index
	for i, k := range g.t.Rows.Keys {
		style := g.cfg.Presets.Index
		if g.headers[i] {
			style = g.cfg.Presets.GroupHeader
		}
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
			if table.IsMissing(value) {
				continue
			}
			row, col := reg.Cell(level, i).RowCol()
			if err := g.writeCell(row, col, value, style, nil); err != nil {
				return NewStageError("index values", err)
			}
		}
	}
	return nil
}

func (g *GroupedTableWriter) applyGroupedMerges() error {
	rowSpans, err := g.groupedRowSpans()
	if err != nil {
		return NewStageError("merges", err)
	}
	colSpans, err := layout.SpansByLevel(g.t.Cols.Keys, -1)
	if err != nil {
		return NewStageError("merges", err)
	}
	ranges := layout.SpanMerges(rowSpans, g.lay, layout.Rows)
	ranges = append(ranges, layout.SpanMerges(colSpans, g.lay, layout.Cols)...)
	ranges = append(ranges, layout.BlankTrailingMerges(g.t.Rows.Keys, g.lay)...)
	if err := ApplyMerges(g.sink, ranges, g.cfg.Logger); err != nil {
		return NewStageError("merges", err)
	}
	return nil
}

func (g *GroupedTableWriter) applyGroupedBorders() error {
	rowSpans, err := g.groupedRowSpans()
	if err != nil {
		return NewStageError("borders", err)
	}
	colSpans, err := layout.SpansByLevel(g.t.Cols.Keys, -1)
	if err != nil {
		return NewStageError("borders", err)
	}
	return g.applyBorderEdges(rowSpans, colSpans)
}

// groupedRowSpans is the row-axis span detection with runs cut at header
// boundaries.
func (g *GroupedTableWriter) groupedRowSpans() ([][]layout.Span, error) {
	spans, err := layout.SpansByLevel(g.t.Rows.Keys, -1)
	if err != nil {
		return nil, err
	}
	for level := range spans {
		spans[level] = layout.SplitSpans(spans[level], g.breaks)
	}
	return spans, nil
}

func (g *GroupedTableWriter) applyHeaderHeights() error {
	for i, isHeader := range g.headers {
		if !isHeader {
			continue
		}
		row, _ := g.lay.Index.Cell(0, i).RowCol()
		if err := g.sink.SetRowHeight(row, g.cfg.HeaderRowHeight); err != nil {
			return NewStageError("row heights", err)
		}
	}
	return nil
}
