package grid

import "fmt"

type cellKey struct {
	row int
	col int
}

// Memory is an in-memory Sink. The zero value is ready to use. It records
// everything a renderer emits and exposes it for assertions and for
// backends that are not spreadsheets at all.
type Memory struct {
	cells      map[cellKey]any
	styles     map[cellKey]Style
	merges     []Range
	rowHeights map[int]float64
	colWidths  map[int]float64
}

// SetCell stores a value; the last write wins.
func (m *Memory) SetCell(row, col int, value any) error {
	if err := checkCell(row, col); err != nil {
		return err
	}
	if m.cells == nil {
		m.cells = make(map[cellKey]any)
	}
	m.cells[cellKey{row, col}] = value
	return nil
}

// ApplyStyle overlays the patch onto the cell's accumulated style.
func (m *Memory) ApplyStyle(row, col int, patch Style) error {
	if err := checkCell(row, col); err != nil {
		return err
	}
	if m.styles == nil {
		m.styles = make(map[cellKey]Style)
	}
	k := cellKey{row, col}
	m.styles[k] = Merge(m.styles[k], patch)
	return nil
}

// Merge records a merge range, rejecting overlaps with ErrMergeConflict.
func (m *Memory) Merge(startRow, startCol, endRow, endCol int) error {
	if err := checkCell(startRow, startCol); err != nil {
		return err
	}
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	r := Range{StartRow: startRow, StartCol: startCol, EndRow: endRow, EndCol: endCol}
	for _, applied := range m.merges {
		if applied.Overlaps(r) {
			return fmt.Errorf("%w: %v and %v", ErrMergeConflict, applied, r)
		}
	}
	m.merges = append(m.merges, r)
	return nil
}

// SetRowHeight stores a row height.
func (m *Memory) SetRowHeight(row int, height float64) error {
	if row < 1 {
		return fmt.Errorf("row %d out of range", row)
	}
	if m.rowHeights == nil {
		m.rowHeights = make(map[int]float64)
	}
	m.rowHeights[row] = height
	return nil
}

// SetColWidth stores a column width.
func (m *Memory) SetColWidth(col int, width float64) error {
	if col < 1 {
		return fmt.Errorf("column %d out of range", col)
	}
	if m.colWidths == nil {
		m.colWidths = make(map[int]float64)
	}
	m.colWidths[col] = width
	return nil
}

// Value returns the stored cell value, nil when the cell was never
// written.
func (m *Memory) Value(row, col int) any {
	return m.cells[cellKey{row, col}]
}

// StyleAt returns the accumulated style of a cell. A never-styled cell
// yields the zero style.
func (m *Memory) StyleAt(row, col int) Style {
	return m.styles[cellKey{row, col}]
}

// Merges returns the applied merge ranges in application order.
func (m *Memory) Merges() []Range {
	out := make([]Range, len(m.merges))
	copy(out, m.merges)
	return out
}

// Covering returns the merge range covering a cell, if any.
func (m *Memory) Covering(row, col int) (Range, bool) {
	for _, r := range m.merges {
		if r.Contains(row, col) {
			return r, true
		}
	}
	return Range{}, false
}

// RowHeight returns the stored height of a row.
func (m *Memory) RowHeight(row int) (float64, bool) {
	h, ok := m.rowHeights[row]
	return h, ok
}

// ColWidth returns the stored width of a column.
func (m *Memory) ColWidth(col int) (float64, bool) {
	w, ok := m.colWidths[col]
	return w, ok
}

// Bounds returns the largest row and column touched by a value, style, or
// merge. Zero when nothing was written.
func (m *Memory) Bounds() (maxRow, maxCol int) {
	for k := range m.cells {
		maxRow = max(maxRow, k.row)
		maxCol = max(maxCol, k.col)
	}
	for k := range m.styles {
		maxRow = max(maxRow, k.row)
		maxCol = max(maxCol, k.col)
	}
	for _, r := range m.merges {
		maxRow = max(maxRow, r.EndRow)
		maxCol = max(maxCol, r.EndCol)
	}
	return maxRow, maxCol
}

func checkCell(row, col int) error {
	if row < 1 || col < 1 {
		return fmt.Errorf("cell (%d, %d) out of range", row, col)
	}
	return nil
}
