package layout

// Side names one edge of a cell.
type Side int

const (
	Left Side = iota
	Top
	Right
	Bottom
)

// Edge is a border placement: one side of one cell. Appliers translate
// edges into single-side style patches, so placing an edge never disturbs
// the other three sides.
type Edge struct {
	At   Pos
	Side Side
}

// IndexSeparator places the vertical line between the index and the data:
// a left edge on the first data column, for every row of the table
// rectangle, header rows included. A table without an index has no
// separator.
func IndexSeparator(lay *TableLayout) []Edge {
	if lay.Index.Width == 0 {
		return nil
	}
	x := lay.Data.XStart()
	edges := make([]Edge, 0, lay.TotalHeight())
	for y := lay.YStart(); y <= lay.YEnd(); y++ {
		edges = append(edges, Edge{At: Pos{X: x, Y: y}, Side: Left})
	}
	return edges
}

// HeaderSeparator places the horizontal line between the column headers
// and the data: a top edge on the first data row, across the whole table
// width. A table without column headers has no separator.
func HeaderSeparator(lay *TableLayout) []Edge {
	if lay.Columns.Height == 0 {
		return nil
	}
	y := lay.Data.YStart()
	edges := make([]Edge, 0, lay.TotalWidth())
	for x := lay.XStart(); x <= lay.XEnd(); x++ {
		edges = append(edges, Edge{At: Pos{X: x, Y: y}, Side: Top})
	}
	return edges
}

// LevelEdges places separator lines where outer hierarchy levels change:
// one full-width top edge at each row-axis span start, or one full-height
// left edge at each column-axis span start. Only levels shallower than
// len(spans)-minBorderLevel draw, and spans starting at position 0 are
// skipped since the region boundary already separates them. No edges are
// placed unless the axis has more than minBorderLevel levels.
func LevelEdges(lay *TableLayout, spans [][]Span, axis Axis, minBorderLevel int) []Edge {
	if len(spans) <= minBorderLevel {
		return nil
	}
	maxLevel := len(spans) - minBorderLevel
	var edges []Edge
	for level := 0; level < maxLevel; level++ {
		for _, s := range spans[level] {
			if s.Start == 0 {
				continue
			}
			if axis == Rows {
				y := lay.Index.YStart() + s.Start
				for x := lay.XStart(); x <= lay.XEnd(); x++ {
					edges = append(edges, Edge{At: Pos{X: x, Y: y}, Side: Top})
				}
			} else {
				x := lay.Columns.XStart() + s.Start
				for y := lay.YStart(); y <= lay.YEnd(); y++ {
					edges = append(edges, Edge{At: Pos{X: x, Y: y}, Side: Left})
				}
			}
		}
	}
	return edges
}

// FlagEdges places custom separator lines from per-position flags: a set
// row flag draws a full-width top edge above that data row, a set column
// flag a full-height left edge before that data column.
func FlagEdges(lay *TableLayout, rowFlags, colFlags []bool) []Edge {
	var edges []Edge
	for i, set := range rowFlags {
		if !set {
			continue
		}
		y := lay.Index.YStart() + i
		for x := lay.XStart(); x <= lay.XEnd(); x++ {
			edges = append(edges, Edge{At: Pos{X: x, Y: y}, Side: Top})
		}
	}
	for j, set := range colFlags {
		if !set {
			continue
		}
		x := lay.Columns.XStart() + j
		for y := lay.YStart(); y <= lay.YEnd(); y++ {
			edges = append(edges, Edge{At: Pos{X: x, Y: y}, Side: Left})
		}
	}
	return edges
}
