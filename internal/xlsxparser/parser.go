// =============================================================================
// autoAmortize - XLSX Schedule Parser
// =============================================================================
//
// Loads an XLSX amortization schedule via excelize. Like the CSV parser it
// serves both passes of the pipeline: a raw all-text grid for header
// detection, then the typed table at the located header row.
//
// XLSX is the one source format with native typing: a header cell that holds
// a real date value is surfaced as a time.Time so the classifier can take its
// (year, month) directly instead of guessing at the cell's display format.
// Date cells are recognized by their number-format style and converted from
// the underlying Excel serial value.
//
// Only the first sheet of the workbook is read.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fahim-tazz/autoAmortize/internal/schedule"
)

// File is an open XLSX schedule source.
type File struct {
	path  string
	sheet string
	wb    *excelize.File
}

// Open opens the workbook at path and selects its first sheet.
func Open(path string) (*File, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		wb.Close()
		return nil, fmt.Errorf("read %s: workbook has no sheets", path)
	}
	return &File{path: path, sheet: sheets[0], wb: wb}, nil
}

// Close releases the underlying workbook.
func (f *File) Close() error {
	return f.wb.Close()
}

// Path returns the source file path.
func (f *File) Path() string {
	return f.path
}

// Sheet returns the name of the sheet being read.
func (f *File) Sheet() string {
	return f.sheet
}

// RawGrid returns every cell as display text with no header semantics, for
// header detection.
func (f *File) RawGrid() ([][]string, error) {
	rows, err := f.wb.GetRows(f.sheet)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	return rows, nil
}

// LoadTable returns the header cells and data rows below the given header
// row index. Header cells styled as dates carry their native time value in
// addition to the display text.
func (f *File) LoadTable(headerRow int) ([]schedule.Cell, [][]schedule.Cell, error) {
	grid, err := f.wb.GetRows(f.sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	if headerRow < 0 || headerRow >= len(grid) {
		return nil, nil, fmt.Errorf("read %s: header row %d out of range", f.path, headerRow)
	}

	header := make([]schedule.Cell, len(grid[headerRow]))
	for j, text := range grid[headerRow] {
		cell := schedule.Cell{Text: text}
		if t, ok := f.cellTime(headerRow, j); ok {
			cell.Time = &t
		}
		header[j] = cell
	}

	rows := make([][]schedule.Cell, 0, len(grid)-headerRow-1)
	for _, record := range grid[headerRow+1:] {
		cells := make([]schedule.Cell, len(record))
		for j, text := range record {
			cells[j] = schedule.Cell{Text: text}
		}
		rows = append(rows, cells)
	}
	return header, rows, nil
}

// cellTime reports the native date value of the cell at (row, col), both
// zero-based, when the cell holds a number styled with a date format.
func (f *File) cellTime(row, col int) (time.Time, bool) {
	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return time.Time{}, false
	}

	styleID, err := f.wb.GetCellStyle(f.sheet, axis)
	if err != nil {
		return time.Time{}, false
	}
	style, err := f.wb.GetStyle(styleID)
	if err != nil || !isDateStyle(style) {
		return time.Time{}, false
	}

	raw, err := f.wb.GetCellValue(f.sheet, axis, excelize.Options{RawCellValue: true})
	if err != nil {
		return time.Time{}, false
	}
	serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return time.Time{}, false
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// isDateStyle reports whether a cell style renders its value as a date,
// either via one of the built-in date number formats or a custom format
// containing date tokens.
func isDateStyle(style *excelize.Style) bool {
	if style == nil {
		return false
	}
	switch id := style.NumFmt; {
	case id >= 14 && id <= 22: // built-in date and date-time formats
		return true
	case id >= 27 && id <= 36: // locale date formats
		return true
	case id >= 45 && id <= 47: // elapsed-time formats
		return true
	case id >= 50 && id <= 58: // locale date formats
		return true
	}
	if style.CustomNumFmt != nil {
		fmtStr := strings.ToLower(*style.CustomNumFmt)
		for _, token := range []string{"yy", "dd", "mmm"} {
			if strings.Contains(fmtStr, token) {
				return true
			}
		}
	}
	return false
}
