// Package book assembles multi-sheet workbooks from renderable sheet
// variants: single tables with trimmings around them, stacked table
// collections, and documentation sheets.
package book

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// defaultSheetName is the sheet excelize seeds a fresh file with.
const defaultSheetName = "Sheet1"

// Tab colors by sheet role.
const (
	// ColorOutput marks sheets carrying final results.
	ColorOutput = "70AD47"
	// ColorInterim marks sheets carrying intermediate results.
	ColorInterim = "FFC000"
	// ColorDoc marks documentation sheets.
	ColorDoc = "4472C4"
)

// Workbook collects sheets and renders them into one spreadsheet file.
type Workbook struct {
	file   *excelize.File
	sheets []Sheet
}

// New returns an empty workbook.
func New() *Workbook {
	return &Workbook{file: excelize.NewFile()}
}

// File exposes the underlying spreadsheet for workbook-scoped settings
// the sheet variants do not cover.
func (w *Workbook) File() *excelize.File {
	return w.file
}

// Add appends a sheet. Sheets render in insertion order; the first one
// takes the place of the file's default sheet.
func (w *Workbook) Add(s Sheet) {
	w.sheets = append(w.sheets, s)
}

// Render renders every added sheet in order.
func (w *Workbook) Render() error {
	for i, s := range w.sheets {
		name := s.SheetName()
		if err := w.ensure(i, name); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
		if err := s.render(w.file); err != nil {
			return fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	return nil
}

func (w *Workbook) ensure(i int, name string) error {
	if i == 0 {
		if name == defaultSheetName {
			return nil
		}
		return w.file.SetSheetName(defaultSheetName, name)
	}
	_, err := w.file.NewSheet(name)
	return err
}

// SaveAs writes the workbook to path. Call Render first.
func (w *Workbook) SaveAs(path string) error {
	return w.file.SaveAs(path)
}

// Write streams the workbook to wr. Call Render first.
func (w *Workbook) Write(wr io.Writer) error {
	return w.file.Write(wr)
}

// Close releases the underlying file resources.
func (w *Workbook) Close() error {
	return w.file.Close()
}
