package book

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hmtbr/tabxl/pkg/tabxl"
	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
	"github.com/hmtbr/tabxl/pkg/tabxl/grid/xlsx"
	"github.com/hmtbr/tabxl/pkg/tabxl/layout"
	"github.com/hmtbr/tabxl/pkg/tabxl/table"
	"github.com/hmtbr/tabxl/pkg/tabxl/writer"
)

// Sheet is one renderable worksheet of a workbook. The variants are
// TableSheet, MultiTableSheet, and DocSheet; the interface is closed.
type Sheet interface {
	// SheetName returns the worksheet name.
	SheetName() string

	render(f *excelize.File) error
}

// TableSheet renders one table, with optional trimmings around and
// workbook features on top of it.
type TableSheet struct {
	// Name is the worksheet name.
	Name string
	// Table is the table to render.
	Table *table.Table
	// Opts controls the table rendering, grouping included.
	Opts tabxl.Options
	// Title is written above the table when set.
	Title string
	// Caption is written below the table when set.
	Caption string
	// TabColor is an RRGGBB sheet tab color.
	TabColor string
	// Freeze pins the rows above and the columns left of the data region.
	Freeze bool
	// Filter puts an autofilter on the last header row across the table.
	Filter bool
	// Autosize estimates column widths from the rendered content.
	Autosize bool
	// ShowGrid leaves the worksheet gridlines visible.
	ShowGrid bool
}

// SheetName returns the worksheet name.
func (s *TableSheet) SheetName() string {
	return s.Name
}

func (s *TableSheet) render(f *excelize.File) error {
	if err := setupSheet(f, s.Name, s.TabColor, s.ShowGrid); err != nil {
		return err
	}
	sink := xlsx.New(f, s.Name)
	presets := s.Opts.EffectivePresets()

	cfg := s.Opts.Config()
	if s.Title != "" {
		if err := writeText(sink, cfg.Origin, s.Title, presets.Subtitle); err != nil {
			return err
		}
		cfg.Origin = cfg.Origin.Offset(0, 1)
	}

	w, err := newTableWriter(s.Table, sink, cfg, s.Opts.GroupLevels)
	if err != nil {
		return err
	}
	if err := w.WriteAll(); err != nil {
		return err
	}
	lay := w.Layout()

	if s.Caption != "" {
		at := layout.Pos{X: lay.XStart(), Y: lay.YEnd() + 1}
		if err := writeText(sink, at, s.Caption, presets.Caption); err != nil {
			return err
		}
	}
	if s.Freeze {
		if err := freezePanes(f, s.Name, lay); err != nil {
			return err
		}
	}
	if s.Filter {
		if err := autoFilter(f, s.Name, lay); err != nil {
			return err
		}
	}
	if s.Autosize {
		est := newWidthEstimator()
		est.measure(w.Table(), lay, presets, headerRows(w), sink.Merges())
		return est.apply(sink)
	}
	return nil
}

// TitledTable is one table of a MultiTableSheet.
type TitledTable struct {
	// Title is merged across the table width above it.
	Title string
	// Table is the table to render.
	Table *table.Table
	// Caption is merged below the table when set.
	Caption string
	// Opts controls this table's rendering.
	Opts tabxl.Options
}

// MultiTableSheet stacks tables vertically on one worksheet, with blank
// rows between them and shared column sizing across the sheet.
type MultiTableSheet struct {
	// Name is the worksheet name.
	Name string
	// Items are the tables, rendered top to bottom.
	Items []TitledTable
	// Spacing is the number of blank rows between tables.
	// If zero, defaults to 1.
	Spacing int
	// TabColor is an RRGGBB sheet tab color.
	TabColor string
	// ShowGrid leaves the worksheet gridlines visible.
	ShowGrid bool
}

// SheetName returns the worksheet name.
func (s *MultiTableSheet) SheetName() string {
	return s.Name
}

// EffectiveSpacing returns the number of blank rows between tables.
func (s *MultiTableSheet) EffectiveSpacing() int {
	if s.Spacing > 0 {
		return s.Spacing
	}
	return 1
}

func (s *MultiTableSheet) render(f *excelize.File) error {
	if err := setupSheet(f, s.Name, s.TabColor, s.ShowGrid); err != nil {
		return err
	}
	sink := xlsx.New(f, s.Name)
	est := newWidthEstimator()

	y := 0
	for _, item := range s.Items {
		cfg := item.Opts.Config()
		cfg.Origin = layout.Pos{Y: y + 1}
		w, err := newTableWriter(item.Table, sink, cfg, item.Opts.GroupLevels)
		if err != nil {
			return err
		}
		if err := w.WriteAll(); err != nil {
			return err
		}
		lay := w.Layout()

		title := grid.Style{Bold: grid.Bool(true)}
		if err := mergedText(sink, layout.Pos{Y: y}, lay.TotalWidth(), item.Title, title); err != nil {
			return err
		}
		end := lay.YEnd() + 1
		if item.Caption != "" {
			caption := grid.Style{Italic: grid.Bool(true)}
			if err := mergedText(sink, layout.Pos{Y: end}, lay.TotalWidth(), item.Caption, caption); err != nil {
				return err
			}
			end++
		}
		est.measure(w.Table(), lay, item.Opts.EffectivePresets(), headerRows(w), sink.Merges())
		y = end + s.EffectiveSpacing()
	}
	return est.apply(sink)
}

// tableWriter is the part of the writer the book layer drives.
type tableWriter interface {
	WriteAll() error
	Layout() *layout.TableLayout
	Table() *table.Table
}

func newTableWriter(t *table.Table, sink grid.Sink, cfg writer.Config, groupLevels int) (tableWriter, error) {
	if groupLevels > 0 {
		w, err := writer.NewGrouped(t, sink, groupLevels, cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	w, err := writer.New(t, sink, cfg)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func headerRows(w tableWriter) []bool {
	if g, ok := w.(*writer.GroupedTableWriter); ok {
		return g.Headers()
	}
	return nil
}

func setupSheet(f *excelize.File, name, tabColor string, showGrid bool) error {
	show := showGrid
	if err := f.SetSheetView(name, 0, &excelize.ViewOptions{ShowGridLines: &show}); err != nil {
		return err
	}
	if tabColor == "" {
		return nil
	}
	rgb := strings.TrimPrefix(tabColor, "#")
	return f.SetSheetProps(name, &excelize.SheetPropsOptions{TabColorRGB: &rgb})
}

func writeText(sink grid.Sink, at layout.Pos, text string, style grid.Style) error {
	row, col := at.RowCol()
	if err := sink.SetCell(row, col, text); err != nil {
		return err
	}
	if style.IsZero() {
		return nil
	}
	return sink.ApplyStyle(row, col, style)
}

// mergedText writes one line of text merged across width columns.
func mergedText(sink grid.Sink, at layout.Pos, width int, text string, style grid.Style) error {
	if err := writeText(sink, at, text, style); err != nil {
		return err
	}
	if width < 2 {
		return nil
	}
	row, col := at.RowCol()
	return sink.Merge(row, col, row, col+width-1)
}

// freezePanes pins everything above and left of the data region.
func freezePanes(f *excelize.File, name string, lay *layout.TableLayout) error {
	rows := lay.Data.YStart()
	cols := lay.Data.XStart()
	top, err := excelize.CoordinatesToCellName(cols+1, rows+1)
	if err != nil {
		return err
	}
	return f.SetPanes(name, &excelize.Panes{
		Freeze:      true,
		XSplit:      cols,
		YSplit:      rows,
		TopLeftCell: top,
		ActivePane:  "bottomRight",
	})
}

// autoFilter covers the table from its last header row down.
func autoFilter(f *excelize.File, name string, lay *layout.TableLayout) error {
	first, err := excelize.CoordinatesToCellName(lay.XStart()+1, lay.Data.YStart())
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(lay.XEnd()+1, lay.YEnd()+1)
	if err != nil {
		return err
	}
	return f.AutoFilter(name, first+":"+last, []excelize.AutoFilterOptions{})
}
