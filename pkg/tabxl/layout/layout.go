// Package layout computes where a hierarchical table lives on a grid: the
// five sub-regions of a table rectangle, value runs along each axis level,
// the merge ranges they imply, and separator border placements. Everything
// here is pure geometry; nothing touches a sink.
package layout

import (
	"errors"
	"fmt"

	"github.com/hmtbr/tabxl/pkg/tabxl/table"
)

// ErrRegionOverlap indicates two non-empty layout regions intersect. The
// construction rules make this unreachable; Validate exists for tests and
// debug paths.
var ErrRegionOverlap = errors.New("layout regions overlap")

// Dims is the shape information a table layout is built from.
type Dims struct {
	// IndexLevels is the row-axis hierarchy depth, RowCount its length.
	IndexLevels int
	RowCount    int
	// ColumnLevels is the column-axis hierarchy depth, ColCount its length.
	ColumnLevels int
	ColCount     int
	// HasIndexNames adds one row for row-axis level names between the
	// column headers and the index.
	HasIndexNames bool
	// HasColumnNames adds one column for column-axis level names left of
	// the column headers.
	HasColumnNames bool
	// Origin is the top-left corner of the whole table rectangle.
	Origin Pos
}

// TableLayout places the five sub-regions of a rendered table. Build one
// with New or FromTable.
type TableLayout struct {
	// Columns holds the column header values, one row per level.
	Columns Region
	// Index holds the row key values, one column per level.
	Index Region
	// IndexNames is the single row of row-axis level names, empty when the
	// axis is unnamed.
	IndexNames Region
	// ColumnNames is the single column of column-axis level names, empty
	// when the axis is unnamed.
	ColumnNames Region
	// Data holds the cell values.
	Data Region

	origin Pos
}

// New computes a layout from table shape information. Regions are placed
// in dependency order: Columns, Index, IndexNames, ColumnNames, Data.
func New(d Dims) *TableLayout {
	indexY := d.ColumnLevels
	if d.HasIndexNames {
		indexY++
	}

	l := &TableLayout{origin: d.Origin}
	l.Columns = Region{
		Origin: d.Origin.Offset(d.IndexLevels, 0),
		Width:  d.ColCount,
		Height: d.ColumnLevels,
	}
	l.Index = Region{
		Origin: d.Origin.Offset(0, indexY),
		Width:  d.IndexLevels,
		Height: d.RowCount,
	}
	namesHeight := 0
	if d.HasIndexNames {
		namesHeight = 1
	}
	l.IndexNames = Region{
		Origin: l.Index.Origin.Offset(0, -1),
		Width:  d.IndexLevels,
		Height: namesHeight,
	}
	namesWidth := 0
	if d.HasColumnNames {
		namesWidth = 1
	}
	l.ColumnNames = Region{
		Origin: l.Columns.Origin.Offset(-1, 0),
		Width:  namesWidth,
		Height: d.ColumnLevels,
	}
	l.Data = Region{
		Origin: Pos{X: l.Columns.XStart(), Y: l.Index.YStart()},
		Width:  d.ColCount,
		Height: d.RowCount,
	}
	return l
}

// FromTable derives the layout of a table anchored at origin.
func FromTable(t *table.Table, origin Pos) *TableLayout {
	return New(Dims{
		IndexLevels:    t.Rows.Levels(),
		RowCount:       t.Rows.Len(),
		ColumnLevels:   t.Cols.Levels(),
		ColCount:       t.Cols.Len(),
		HasIndexNames:  t.Rows.HasNames(),
		HasColumnNames: t.Cols.HasNames(),
		Origin:         origin,
	})
}

// TotalWidth returns the width of the whole table rectangle.
func (l *TableLayout) TotalWidth() int {
	return l.Index.Width + l.Data.Width
}

// TotalHeight returns the height of the whole table rectangle.
func (l *TableLayout) TotalHeight() int {
	return l.Columns.Height + l.IndexNames.Height + l.Index.Height
}

// XStart returns the leftmost column of the table rectangle.
func (l *TableLayout) XStart() int {
	return l.origin.X
}

// XEnd returns the rightmost column of the table rectangle.
func (l *TableLayout) XEnd() int {
	return l.origin.X + l.TotalWidth() - 1
}

// YStart returns the topmost row of the table rectangle.
func (l *TableLayout) YStart() int {
	return l.origin.Y
}

// YEnd returns the bottommost row of the table rectangle.
func (l *TableLayout) YEnd() int {
	return l.origin.Y + l.TotalHeight() - 1
}

// Validate checks that no two non-empty regions intersect.
func (l *TableLayout) Validate() error {
	regions := []struct {
		name string
		r    Region
	}{
		{"columns", l.Columns},
		{"index", l.Index},
		{"index names", l.IndexNames},
		{"column names", l.ColumnNames},
		{"data", l.Data},
	}
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			if regionsOverlap(regions[i].r, regions[j].r) {
				return fmt.Errorf("%w: %s and %s", ErrRegionOverlap, regions[i].name, regions[j].name)
			}
		}
	}
	return nil
}
