// Package grid defines the sink contract table rendering writes into: set
// a cell, patch its style, merge a range, size rows and columns. Anything
// grid-shaped can implement it; Memory is the in-package implementation
// and grid/xlsx the spreadsheet-backed one.
package grid

import "errors"

// ErrMergeConflict indicates a merge range overlapping one already
// applied.
var ErrMergeConflict = errors.New("merge range overlaps an existing merge")

// Sink receives a rendered table. Coordinates are one-based. Implementations
// must make ApplyStyle merge field-wise onto the cell's current style
// state, so single-side border patches never erase the other sides.
type Sink interface {
	// SetCell writes a value. Writing a cell twice keeps the last value.
	SetCell(row, col int, value any) error
	// ApplyStyle overlays the set fields of patch onto the cell's style.
	ApplyStyle(row, col int, patch Style) error
	// Merge merges an inclusive range. Overlapping an applied merge
	// reports ErrMergeConflict and applies nothing.
	Merge(startRow, startCol, endRow, endCol int) error
	// SetRowHeight sets a row height in points.
	SetRowHeight(row int, height float64) error
	// SetColWidth sets a column width in character units.
	SetColWidth(col int, width float64) error
}

// Range is an applied merge in one-based inclusive coordinates.
type Range struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Contains reports whether the range covers the cell.
func (r Range) Contains(row, col int) bool {
	return row >= r.StartRow && row <= r.EndRow && col >= r.StartCol && col <= r.EndCol
}

// Overlaps reports whether two ranges share at least one cell.
func (r Range) Overlaps(o Range) bool {
	return r.StartRow <= o.EndRow && o.StartRow <= r.EndRow &&
		r.StartCol <= o.EndCol && o.StartCol <= r.EndCol
}
