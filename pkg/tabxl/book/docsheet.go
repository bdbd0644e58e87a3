package book

import (
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
	"github.com/hmtbr/tabxl/pkg/tabxl/grid/xlsx"
	"github.com/hmtbr/tabxl/pkg/tabxl/layout"
)

// docColWidths sizes the label, content, and method columns.
var docColWidths = [3]float64{20, 60, 100}

// DocEntry is one named entry of a documentation sheet: a data source
// with its path, or a sheet with its description.
type DocEntry struct {
	Name        string
	Description string
}

// DocSheet renders a documentation worksheet describing how a workbook
// was produced: when, from which sources, by which script, and what each
// sheet holds.
type DocSheet struct {
	// Name is the worksheet name. If empty, defaults to "documentation".
	Name string
	// Title is merged across the top of the sheet.
	Title string
	// Purpose states what the workbook is for.
	Purpose string
	// Method describes how the results were computed.
	Method string
	// Sources lists the input data with their paths.
	Sources []DocEntry
	// Script is the path of the producing script.
	Script string
	// Created is the creation timestamp. If empty, defaults to now.
	Created string
	// Entries describes the workbook's sheets.
	Entries []DocEntry
	// TabColor is an RRGGBB sheet tab color. If empty, defaults to
	// ColorDoc.
	TabColor string
}

// SheetName returns the worksheet name.
func (s *DocSheet) SheetName() string {
	if s.Name == "" {
		return "documentation"
	}
	return s.Name
}

// EffectiveCreated returns the creation timestamp.
func (s *DocSheet) EffectiveCreated() string {
	if s.Created != "" {
		return s.Created
	}
	return time.Now().Format("02-01-2006 15:04")
}

func (s *DocSheet) effectiveTabColor() string {
	if s.TabColor != "" {
		return s.TabColor
	}
	return ColorDoc
}

func (s *DocSheet) render(f *excelize.File) error {
	name := s.SheetName()
	if err := setupSheet(f, name, s.effectiveTabColor(), false); err != nil {
		return err
	}
	sink := xlsx.New(f, name)
	for i, w := range docColWidths {
		if err := sink.SetColWidth(i+1, w); err != nil {
			return err
		}
	}

	label := grid.Style{Bold: grid.Bool(true), VAlign: grid.VTop}
	wrapped := grid.Style{Wrap: grid.Bool(true)}

	title := grid.Style{Bold: grid.Bool(true), FontSize: 14}
	if err := mergedText(sink, layout.Pos{}, len(docColWidths), s.Title, title); err != nil {
		return err
	}

	// The method description gets the wide third column to itself, next
	// to the label/content sections.
	if err := writeText(sink, layout.Pos{X: 2, Y: 2}, "Method", label); err != nil {
		return err
	}
	method := grid.Style{Wrap: grid.Bool(true), VAlign: grid.VTop}
	if err := writeText(sink, layout.Pos{X: 2, Y: 3}, s.Method, method); err != nil {
		return err
	}

	y := 2
	section := func(lbl, content string) error {
		if err := writeText(sink, layout.Pos{Y: y}, lbl, label); err != nil {
			return err
		}
		if err := writeText(sink, layout.Pos{X: 1, Y: y}, content, wrapped); err != nil {
			return err
		}
		y += 2
		return nil
	}

	if err := section("Created", s.EffectiveCreated()); err != nil {
		return err
	}

	if err := writeText(sink, layout.Pos{Y: y}, "Sources", label); err != nil {
		return err
	}
	y++
	for _, src := range s.Sources {
		if err := writeText(sink, layout.Pos{Y: y}, src.Name, grid.Style{}); err != nil {
			return err
		}
		if err := writeText(sink, layout.Pos{X: 1, Y: y}, src.Description, grid.Style{}); err != nil {
			return err
		}
		y++
	}
	y++

	if err := section("Script", s.Script); err != nil {
		return err
	}
	if err := section("Purpose", s.Purpose); err != nil {
		return err
	}

	if err := writeText(sink, layout.Pos{Y: y}, "Sheets", label); err != nil {
		return err
	}
	y++
	names := grid.Style{VAlign: grid.VTop}
	for _, e := range s.Entries {
		if err := writeText(sink, layout.Pos{Y: y}, e.Name, names); err != nil {
			return err
		}
		if err := writeText(sink, layout.Pos{X: 1, Y: y}, e.Description, wrapped); err != nil {
			return err
		}
		y++
	}
	return nil
}
