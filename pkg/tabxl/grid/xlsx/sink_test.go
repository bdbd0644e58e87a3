package xlsx

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hmtbr/tabxl/pkg/tabxl/grid"
)

func TestSinkRoundtrip(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	s := New(f, "Sheet1")

	if err := s.SetCell(1, 1, "region"); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if err := s.SetCell(2, 1, 42.5); err != nil {
		t.Fatalf("SetCell failed: %v", err)
	}
	if err := s.ApplyStyle(1, 1, grid.Style{Bold: grid.Bool(true), FontSize: 13}); err != nil {
		t.Fatalf("ApplyStyle failed: %v", err)
	}
	if err := s.ApplyStyle(1, 1, grid.Style{Border: grid.Border{Top: grid.LineMedium}}); err != nil {
		t.Fatalf("ApplyStyle failed: %v", err)
	}
	if err := s.Merge(3, 1, 4, 2); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if err := s.SetRowHeight(1, 32); err != nil {
		t.Fatalf("SetRowHeight failed: %v", err)
	}
	if err := s.SetColWidth(2, 18.5); err != nil {
		t.Fatalf("SetColWidth failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "roundtrip.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}

	reopened, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetCellValue("Sheet1", "A1")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "region" {
		t.Errorf("A1 = %q, want %q", got, "region")
	}
	got, err = reopened.GetCellValue("Sheet1", "A2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "42.5" {
		t.Errorf("A2 = %q, want %q", got, "42.5")
	}

	merges, err := reopened.GetMergeCells("Sheet1")
	if err != nil {
		t.Fatalf("GetMergeCells failed: %v", err)
	}
	if len(merges) != 1 {
		t.Fatalf("got %d merged ranges, want 1", len(merges))
	}
	if start := merges[0].GetStartAxis(); start != "A3" {
		t.Errorf("merge start = %q, want %q", start, "A3")
	}
	if end := merges[0].GetEndAxis(); end != "B4" {
		t.Errorf("merge end = %q, want %q", end, "B4")
	}

	styleID, err := reopened.GetCellStyle("Sheet1", "A1")
	if err != nil {
		t.Fatalf("GetCellStyle failed: %v", err)
	}
	style, err := reopened.GetStyle(styleID)
	if err != nil {
		t.Fatalf("GetStyle failed: %v", err)
	}
	if style.Font == nil || !style.Font.Bold {
		t.Errorf("A1 font = %+v, want bold", style.Font)
	}
	if style.Font != nil && style.Font.Size != 13 {
		t.Errorf("A1 font size = %v, want 13", style.Font.Size)
	}
	top := 0
	for _, b := range style.Border {
		if b.Type == "top" {
			top = b.Style
		}
	}
	if top != 2 {
		t.Errorf("A1 top border style = %d, want 2", top)
	}

	height, err := reopened.GetRowHeight("Sheet1", 1)
	if err != nil {
		t.Fatalf("GetRowHeight failed: %v", err)
	}
	if height != 32 {
		t.Errorf("row 1 height = %v, want 32", height)
	}
	width, err := reopened.GetColWidth("Sheet1", "B")
	if err != nil {
		t.Fatalf("GetColWidth failed: %v", err)
	}
	if width != 18.5 {
		t.Errorf("column B width = %v, want 18.5", width)
	}
}

func TestSinkStyleAccumulates(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	s := New(f, "Sheet1")

	if err := s.ApplyStyle(1, 1, grid.Style{Bold: grid.Bool(true)}); err != nil {
		t.Fatalf("ApplyStyle failed: %v", err)
	}
	if err := s.ApplyStyle(1, 1, grid.Style{Fill: "FFC000"}); err != nil {
		t.Fatalf("ApplyStyle failed: %v", err)
	}

	styleID, err := f.GetCellStyle("Sheet1", "A1")
	if err != nil {
		t.Fatalf("GetCellStyle failed: %v", err)
	}
	style, err := f.GetStyle(styleID)
	if err != nil {
		t.Fatalf("GetStyle failed: %v", err)
	}
	if style.Font == nil || !style.Font.Bold {
		t.Errorf("font = %+v, want bold kept after fill patch", style.Font)
	}
	if style.Fill.Type != "pattern" {
		t.Errorf("fill type = %q, want %q", style.Fill.Type, "pattern")
	}
}

func TestSinkStyleDedup(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	s := New(f, "Sheet1")

	patch := grid.Style{Bold: grid.Bool(true), HAlign: grid.HCenter}
	for row := 1; row <= 4; row++ {
		if err := s.ApplyStyle(row, 1, patch); err != nil {
			t.Fatalf("ApplyStyle failed: %v", err)
		}
	}
	if len(s.ids) != 1 {
		t.Errorf("registered %d styles, want 1", len(s.ids))
	}
}

func TestSinkMergeConflict(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	s := New(f, "Sheet1")

	if err := s.Merge(1, 1, 2, 2); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	err := s.Merge(2, 2, 3, 3)
	if !errors.Is(err, grid.ErrMergeConflict) {
		t.Fatalf("Merge error = %v, want ErrMergeConflict", err)
	}

	merges, err := f.GetMergeCells("Sheet1")
	if err != nil {
		t.Fatalf("GetMergeCells failed: %v", err)
	}
	if len(merges) != 1 {
		t.Errorf("got %d merged ranges after conflict, want 1", len(merges))
	}

	if err := s.Merge(3, 3, 4, 4); err != nil {
		t.Errorf("disjoint Merge failed: %v", err)
	}
}

func TestSinkSwappedMergeCorners(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	s := New(f, "Sheet1")

	if err := s.Merge(4, 2, 1, 1); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	merges, err := f.GetMergeCells("Sheet1")
	if err != nil {
		t.Fatalf("GetMergeCells failed: %v", err)
	}
	if len(merges) != 1 {
		t.Fatalf("got %d merged ranges, want 1", len(merges))
	}
	if start := merges[0].GetStartAxis(); start != "A1" {
		t.Errorf("merge start = %q, want %q", start, "A1")
	}
	if end := merges[0].GetEndAxis(); end != "B4" {
		t.Errorf("merge end = %q, want %q", end, "B4")
	}
}
