package book

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
	"github.com/hmtbr/tabxl/pkg/tabxl/layout"
	"github.com/hmtbr/tabxl/pkg/tabxl/table"
	"github.com/hmtbr/tabxl/pkg/tabxl/writer"
)

const (
	minColWidth  = 8
	maxColWidth  = 50
	widthPadding = 1.2
	// boldFactor widens bold text slightly; numericWidth is the fixed
	// width assumed for non-string values.
	boldFactor   = 1.1
	numericWidth = 12
	baseFontSize = 11
)

// widthEstimator sizes columns to their content. It walks the cells a
// writer produced instead of reading the workbook back, so it needs the
// same table, layout, and presets the writer used.
type widthEstimator struct {
	widths map[int]float64
}

func newWidthEstimator() *widthEstimator {
	return &widthEstimator{widths: make(map[int]float64)}
}

// measure accumulates content widths for one rendered table. Cells inside
// merged ranges are excluded; headers marks group header rows of a
// grouped render table, nil for a plain one.
func (e *widthEstimator) measure(t *table.Table, lay *layout.TableLayout, presets writer.Presets, headers []bool, merged []grid.Range) {
	for j, k := range t.Cols.Keys {
		for level := 0; level < lay.Columns.Height; level++ {
			value, ok := keyLabel(k, level)
			if !ok {
				continue
			}
			e.add(lay.Columns.Cell(j, level), value, presets.Columns, merged)
		}
	}
	for i, k := range t.Rows.Keys {
		style := presets.Index
		if i < len(headers) && headers[i] {
			style = presets.GroupHeader
		}
		for level := 0; level < lay.Index.Width; level++ {
			value, ok := keyLabel(k, level)
			if !ok {
				continue
			}
			e.add(lay.Index.Cell(level, i), value, style, merged)
		}
	}
	if !lay.IndexNames.Empty() {
		for level := 0; level < lay.IndexNames.Width; level++ {
			e.add(lay.IndexNames.Cell(level, 0), t.Rows.Name(level), presets.IndexNames, merged)
		}
	}
	if !lay.ColumnNames.Empty() {
		for level := 0; level < lay.ColumnNames.Height; level++ {
			e.add(lay.ColumnNames.Cell(0, level), t.Cols.Name(level), presets.ColumnNames, merged)
		}
	}
	for i := 0; i < lay.Data.Height; i++ {
		for j := 0; j < lay.Data.Width; j++ {
			e.add(lay.Data.Cell(j, i), t.Cell(i, j), grid.Style{}, merged)
		}
	}
}

// keyLabel returns the label a key contributes at a level; a scalar key
// only fills level 0.
func keyLabel(k table.Key, level int) (any, bool) {
	if k.IsTuple() {
		return k.Level(level), true
	}
	if level > 0 {
		return nil, false
	}
	return k.Level(0), true
}

func (e *widthEstimator) add(at layout.Pos, value any, style grid.Style, merged []grid.Range) {
	if table.IsMissing(value) {
		return
	}
	row, col := at.RowCol()
	for _, r := range merged {
		if r.Contains(row, col) {
			return
		}
	}
	var content float64
	if s, ok := value.(string); ok {
		content = float64(runewidth.StringWidth(s))
		if style.FontSize > 0 {
			content *= style.FontSize / baseFontSize
		}
		if style.Bold != nil && *style.Bold {
			content *= boldFactor
		}
	} else {
		content = numericWidth
	}
	cur, ok := e.widths[col]
	if !ok {
		cur = minColWidth
	}
	if content > cur {
		cur = content
	}
	e.widths[col] = cur
}

// apply pads and clamps the accumulated widths and sets them on the sink.
// Columns without measured content keep the sheet default.
func (e *widthEstimator) apply(sink grid.Sink) error {
	for col, w := range e.widths {
		adjusted := math.Min(math.Max(w*widthPadding, minColWidth), maxColWidth)
		if err := sink.SetColWidth(col, adjusted); err != nil {
			return err
		}
	}
	return nil
}
