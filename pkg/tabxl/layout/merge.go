package layout

import "github.com/hmtbr/tabxl/pkg/tabxl/table"

// Axis selects which table axis an operation applies to.
type Axis int

const (
	// Rows selects the row axis (the index region).
	Rows Axis = iota
	// Cols selects the column axis (the column header region).
	Cols
)

// MergeRange is a rectangular merge in one-based inclusive sink
// coordinates.
type MergeRange struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Overlaps reports whether two ranges share at least one cell.
func (m MergeRange) Overlaps(other MergeRange) bool {
	return m.StartRow <= other.EndRow && other.StartRow <= m.EndRow &&
		m.StartCol <= other.EndCol && other.StartCol <= m.EndCol
}

// SpanMerges translates per-level spans into merge ranges. A row-axis span
// at level L becomes a vertical merge in the index column of that level; a
// column-axis span becomes a horizontal merge in the header row of that
// level. Spans of a single position produce nothing.
func SpanMerges(spans [][]Span, lay *TableLayout, axis Axis) []MergeRange {
	var out []MergeRange
	for level, levelSpans := range spans {
		for _, s := range levelSpans {
			if s.Count < 2 {
				continue
			}
			var first, last Pos
			if axis == Rows {
				first = lay.Index.Cell(level, s.Start)
				last = lay.Index.Cell(level, s.End()-1)
			} else {
				first = lay.Columns.Cell(s.Start, level)
				last = lay.Columns.Cell(s.End()-1, level)
			}
			out = append(out, rangeBetween(first, last))
		}
	}
	return out
}

// BlankTrailingMerges absorbs blank trailing key components into their
// preceding label. For each row whose key is a tuple, every maximal run of
// blank components at levels 1 and deeper becomes a single-row horizontal
// merge from the column of the last non-blank level through the end of the
// run. Level 0 never participates; scalar keys are skipped.
func BlankTrailingMerges(keys []table.Key, lay *TableLayout) []MergeRange {
	var out []MergeRange
	for i, k := range keys {
		if !k.IsTuple() {
			continue
		}
		lastNonBlank := 0
		runStart := -1
		for level := 1; level < k.Levels(); level++ {
			if table.IsBlank(k.Level(level)) {
				if runStart < 0 {
					runStart = level
				}
				continue
			}
			if runStart >= 0 {
				out = append(out, rangeBetween(lay.Index.Cell(lastNonBlank, i), lay.Index.Cell(level-1, i)))
				runStart = -1
			}
			lastNonBlank = level
		}
		if runStart >= 0 {
			out = append(out, rangeBetween(lay.Index.Cell(lastNonBlank, i), lay.Index.Cell(k.Levels()-1, i)))
		}
	}
	return out
}

// AllMerges returns every merge a table needs: row-axis span merges, then
// column-axis span merges, then blank-trailing merges.
func AllMerges(t *table.Table, lay *TableLayout) ([]MergeRange, error) {
	rowSpans, err := SpansByLevel(t.Rows.Keys, -1)
	if err != nil {
		return nil, err
	}
	colSpans, err := SpansByLevel(t.Cols.Keys, -1)
	if err != nil {
		return nil, err
	}
	out := SpanMerges(rowSpans, lay, Rows)
	out = append(out, SpanMerges(colSpans, lay, Cols)...)
	out = append(out, BlankTrailingMerges(t.Rows.Keys, lay)...)
	return out, nil
}

func rangeBetween(first, last Pos) MergeRange {
	r1, c1 := first.RowCol()
	r2, c2 := last.RowCol()
	return MergeRange{StartRow: r1, StartCol: c1, EndRow: r2, EndCol: c2}
}
