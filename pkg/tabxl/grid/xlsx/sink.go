// Package xlsx adapts an excelize worksheet to the grid.Sink contract.
//
// Spreadsheet styles are immutable registered IDs, so the field-wise merge
// the contract requires happens here: the adapter keeps the accumulated
// style state per cell, registers each distinct state once, and restyles
// the cell with the merged result.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
)

type cellKey struct {
	row int
	col int
}

// styleKey is the comparable form of a style state, for deduplicating
// registered styles.
type styleKey struct {
	bold      int8
	italic    int8
	wrap      int8
	fontSize  float64
	fontColor string
	fill      string
	numFmt    string
	hAlign    grid.HAlign
	vAlign    grid.VAlign
	border    grid.Border
}

// Sink writes to one sheet of an excelize workbook. The sheet must exist;
// the caller keeps ownership of the file and its lifecycle.
type Sink struct {
	file   *excelize.File
	sheet  string
	states map[cellKey]grid.Style
	ids    map[styleKey]int
	merges []grid.Range
}

// New returns a Sink targeting the named sheet of f.
func New(f *excelize.File, sheet string) *Sink {
	return &Sink{
		file:   f,
		sheet:  sheet,
		states: make(map[cellKey]grid.Style),
		ids:    make(map[styleKey]int),
	}
}

// Sheet returns the target sheet name.
func (s *Sink) Sheet() string {
	return s.sheet
}

// Merges returns the ranges merged through this sink, in application
// order.
func (s *Sink) Merges() []grid.Range {
	out := make([]grid.Range, len(s.merges))
	copy(out, s.merges)
	return out
}

// SetCell writes a value.
func (s *Sink) SetCell(row, col int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return s.file.SetCellValue(s.sheet, cell, value)
}

// ApplyStyle merges the patch into the cell's accumulated state and
// restyles the cell with the result.
func (s *Sink) ApplyStyle(row, col int, patch grid.Style) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	k := cellKey{row, col}
	merged := grid.Merge(s.states[k], patch)
	s.states[k] = merged
	id, err := s.styleID(merged)
	if err != nil {
		return err
	}
	return s.file.SetCellStyle(s.sheet, cell, cell, id)
}

// Merge merges an inclusive range. Overlaps with an applied merge report
// grid.ErrMergeConflict without touching the sheet; excelize itself would
// quietly union overlapping ranges.
func (s *Sink) Merge(startRow, startCol, endRow, endCol int) error {
	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	r := grid.Range{StartRow: startRow, StartCol: startCol, EndRow: endRow, EndCol: endCol}
	for _, applied := range s.merges {
		if applied.Overlaps(r) {
			return fmt.Errorf("%w: %v and %v", grid.ErrMergeConflict, applied, r)
		}
	}
	first, err := excelize.CoordinatesToCellName(startCol, startRow)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(endCol, endRow)
	if err != nil {
		return err
	}
	if err := s.file.MergeCell(s.sheet, first, last); err != nil {
		return err
	}
	s.merges = append(s.merges, r)
	return nil
}

// SetRowHeight sets a row height in points.
func (s *Sink) SetRowHeight(row int, height float64) error {
	return s.file.SetRowHeight(s.sheet, row, height)
}

// SetColWidth sets a column width in character units.
func (s *Sink) SetColWidth(col int, width float64) error {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return err
	}
	return s.file.SetColWidth(s.sheet, name, name, width)
}

func (s *Sink) styleID(st grid.Style) (int, error) {
	k := keyOf(st)
	if id, ok := s.ids[k]; ok {
		return id, nil
	}
	id, err := s.file.NewStyle(toExcelize(st))
	if err != nil {
		return 0, err
	}
	s.ids[k] = id
	return id, nil
}

func keyOf(st grid.Style) styleKey {
	return styleKey{
		bold:      triState(st.Bold),
		italic:    triState(st.Italic),
		wrap:      triState(st.Wrap),
		fontSize:  st.FontSize,
		fontColor: st.FontColor,
		fill:      st.Fill,
		numFmt:    st.NumberFormat,
		hAlign:    st.HAlign,
		vAlign:    st.VAlign,
		border:    st.Border,
	}
}

func triState(p *bool) int8 {
	switch {
	case p == nil:
		return -1
	case *p:
		return 1
	default:
		return 0
	}
}

func toExcelize(st grid.Style) *excelize.Style {
	out := &excelize.Style{}
	if st.Bold != nil || st.Italic != nil || st.FontSize != 0 || st.FontColor != "" {
		font := &excelize.Font{
			Size:  st.FontSize,
			Color: st.FontColor,
		}
		if st.Bold != nil {
			font.Bold = *st.Bold
		}
		if st.Italic != nil {
			font.Italic = *st.Italic
		}
		out.Font = font
	}
	if st.Fill != "" {
		out.Fill = excelize.Fill{Type: "pattern", Color: []string{st.Fill}, Pattern: 1}
	}
	if st.HAlign != grid.HDefault || st.VAlign != grid.VDefault || st.Wrap != nil {
		align := &excelize.Alignment{
			Horizontal: hAlignName(st.HAlign),
			Vertical:   vAlignName(st.VAlign),
		}
		if st.Wrap != nil {
			align.WrapText = *st.Wrap
		}
		out.Alignment = align
	}
	out.Border = borders(st.Border)
	if st.NumberFormat != "" {
		code := st.NumberFormat
		out.CustomNumFmt = &code
	}
	return out
}

func borders(b grid.Border) []excelize.Border {
	var out []excelize.Border
	add := func(side string, ls grid.LineStyle) {
		n := lineStyleNum(ls)
		if n == 0 {
			return
		}
		out = append(out, excelize.Border{Type: side, Color: "000000", Style: n})
	}
	add("left", b.Left)
	add("top", b.Top)
	add("right", b.Right)
	add("bottom", b.Bottom)
	return out
}

// lineStyleNum maps line styles onto excelize border style numbers. Unset
// and none both come back as 0: an omitted border side draws nothing.
func lineStyleNum(ls grid.LineStyle) int {
	switch ls {
	case grid.LineThin:
		return 1
	case grid.LineMedium:
		return 2
	case grid.LineDashed:
		return 3
	case grid.LineDotted:
		return 4
	case grid.LineThick:
		return 5
	case grid.LineDouble:
		return 6
	default:
		return 0
	}
}

func hAlignName(a grid.HAlign) string {
	switch a {
	case grid.HLeft:
		return "left"
	case grid.HCenter:
		return "center"
	case grid.HRight:
		return "right"
	default:
		return ""
	}
}

func vAlignName(a grid.VAlign) string {
	switch a {
	case grid.VTop:
		return "top"
	case grid.VCenter:
		return "center"
	case grid.VBottom:
		return "bottom"
	default:
		return ""
	}
}
