package layout

// Pos is a zero-based grid position: X is the column, Y the row. All
// layout computation happens in this space; conversion to the one-based
// coordinates sinks expect goes through Row, Col, or RowCol and nowhere
// else.
type Pos struct {
	X int
	Y int
}

// Add returns the component-wise sum of two positions.
func (p Pos) Add(q Pos) Pos {
	return Pos{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two positions.
func (p Pos) Sub(q Pos) Pos {
	return Pos{X: p.X - q.X, Y: p.Y - q.Y}
}

// Offset returns the position translated by dx columns and dy rows.
func (p Pos) Offset(dx, dy int) Pos {
	return Pos{X: p.X + dx, Y: p.Y + dy}
}

// Row returns the one-based row.
func (p Pos) Row() int {
	return p.Y + 1
}

// Col returns the one-based column.
func (p Pos) Col() int {
	return p.X + 1
}

// RowCol returns the one-based (row, column) pair used by grid sinks.
func (p Pos) RowCol() (row, col int) {
	return p.Y + 1, p.X + 1
}
