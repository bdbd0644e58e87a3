package layout

// Region is a rectangular block of cells anchored at Origin. A zero width
// or height marks an absent region; such regions occupy no cells.
type Region struct {
	Origin Pos
	Width  int
	Height int
}

// Empty reports whether the region occupies no cells.
func (r Region) Empty() bool {
	return r.Width == 0 || r.Height == 0
}

// XStart returns the leftmost column of the region.
func (r Region) XStart() int {
	return r.Origin.X
}

// XEnd returns the rightmost column of the region.
func (r Region) XEnd() int {
	return r.Origin.X + r.Width - 1
}

// YStart returns the topmost row of the region.
func (r Region) YStart() int {
	return r.Origin.Y
}

// YEnd returns the bottommost row of the region.
func (r Region) YEnd() int {
	return r.Origin.Y + r.Height - 1
}

// Cell returns the position dx columns right of and dy rows below the
// region origin. Offsets are not range checked.
func (r Region) Cell(dx, dy int) Pos {
	return r.Origin.Offset(dx, dy)
}

// Contains reports whether the position falls inside the region.
func (r Region) Contains(p Pos) bool {
	return !r.Empty() &&
		p.X >= r.XStart() && p.X <= r.XEnd() &&
		p.Y >= r.YStart() && p.Y <= r.YEnd()
}

func regionsOverlap(a, b Region) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return a.XStart() <= b.XEnd() && b.XStart() <= a.XEnd() &&
		a.YStart() <= b.YEnd() && b.YStart() <= a.YEnd()
}
