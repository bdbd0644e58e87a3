// Package table defines the input model for table rendering: hierarchical
// keys, axes, the table itself, and the grouping pass that turns an axis
// level into synthetic header rows.
package table

import (
	"fmt"
	"math"
)

// Table is a two-dimensional block of values addressed by hierarchical row
// and column keys.
type Table struct {
	// Rows is the row axis; its keys label the index region.
	Rows Axis
	// Cols is the column axis; its keys label the column header region.
	Cols Axis
	// Cells holds the data block, shaped Rows.Len() by Cols.Len().
	Cells [][]any
}

// New returns a validated table. Both axes must satisfy their invariants
// and the cell block must match their lengths exactly.
func New(rows, cols Axis, cells [][]any) (*Table, error) {
	if err := rows.Validate(); err != nil {
		return nil, fmt.Errorf("row axis: %w", err)
	}
	if err := cols.Validate(); err != nil {
		return nil, fmt.Errorf("column axis: %w", err)
	}
	if len(cells) != rows.Len() {
		return nil, fmt.Errorf("%w: %d cell rows for %d keys", ErrDimensionMismatch, len(cells), rows.Len())
	}
	for i, r := range cells {
		if len(r) != cols.Len() {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensionMismatch, i, len(r), cols.Len())
		}
	}
	return &Table{Rows: rows, Cols: cols, Cells: cells}, nil
}

// Cell returns the value at row i, column j.
func (t *Table) Cell(i, j int) any {
	return t.Cells[i][j]
}

// IsMissing reports whether v is a missing value: nil or a floating-point
// NaN.
func IsMissing(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

// IsBlank reports whether v is missing or an empty string.
func IsBlank(v any) bool {
	return IsMissing(v) || v == ""
}
