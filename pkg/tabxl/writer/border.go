package writer

import (
	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
	"github.com/hmtbr/tabxl/pkg/tabxl/layout"
)

// ApplyEdges translates border edges into single-side style patches, so an
// edge never disturbs the other three sides of its cell. A line style of
// LineUnset or LineNone draws nothing.
func ApplyEdges(sink grid.Sink, edges []layout.Edge, line grid.LineStyle) error {
	if line == grid.LineUnset || line == grid.LineNone {
		return nil
	}
	for _, e := range edges {
		row, col := e.At.RowCol()
		if err := sink.ApplyStyle(row, col, sidePatch(e.Side, line)); err != nil {
			return err
		}
	}
	return nil
}

func sidePatch(side layout.Side, line grid.LineStyle) grid.Style {
	var b grid.Border
	switch side {
	case layout.Left:
		b.Left = line
	case layout.Top:
		b.Top = line
	case layout.Right:
		b.Right = line
	case layout.Bottom:
		b.Bottom = line
	}
	return grid.Style{Border: b}
}
