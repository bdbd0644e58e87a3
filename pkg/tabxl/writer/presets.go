package writer

import "github.com/hmtbr/tabxl/pkg/tabxl/grid"

// Presets bundles the cell styles applied to each part of a table.
type Presets struct {
	// Index styles row key cells.
	Index grid.Style
	// Columns styles column header cells.
	Columns grid.Style
	// IndexNames styles the row of row-axis level names.
	IndexNames grid.Style
	// ColumnNames styles the column of column-axis level names.
	ColumnNames grid.Style
	// GroupHeader styles the label of a synthetic group header row.
	GroupHeader grid.Style
	// Title, Subtitle, and Caption style the text lines placed around a
	// table.
	Title    grid.Style
	Subtitle grid.Style
	Caption  grid.Style
}

// DefaultPresets returns the standard presets: bold labels throughout,
// headers centered, index values top-left, group headers enlarged and
// bottom aligned.
func DefaultPresets() Presets {
	return Presets{
		Index:       grid.Style{Bold: grid.Bool(true), HAlign: grid.HLeft, VAlign: grid.VTop},
		Columns:     grid.Style{Bold: grid.Bool(true), HAlign: grid.HCenter, VAlign: grid.VCenter},
		IndexNames:  grid.Style{Bold: grid.Bool(true), HAlign: grid.HLeft, VAlign: grid.VCenter},
		ColumnNames: grid.Style{Bold: grid.Bool(true), HAlign: grid.HRight, VAlign: grid.VCenter},
		GroupHeader: grid.Style{Bold: grid.Bool(true), FontSize: 13, HAlign: grid.HLeft, VAlign: grid.VBottom},
		Title:       grid.Style{Bold: grid.Bool(true), FontSize: 16, HAlign: grid.HLeft},
		Subtitle:    grid.Style{Bold: grid.Bool(true), FontSize: 14, HAlign: grid.HLeft},
		Caption:     grid.Style{Italic: grid.Bool(true), FontSize: 11, HAlign: grid.HLeft},
	}
}
