// =============================================================================
// autoAmortize - CSV Schedule Parser
// =============================================================================
//
// Loads a delimited-text amortization schedule. The file is read once into
// memory and then serves both parse passes of the pipeline:
//
//   1. RawGrid    - every cell as text, no header semantics, used only to
//                   locate the real header row
//   2. LoadTable  - header + data rows sliced at the located header row,
//                   wrapped into schedule cells
//
// CSV carries no native typing, so date-looking header labels stay text and
// are recognized downstream by the classifier.
//
// =============================================================================

package csvparser

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/fahim-tazz/autoAmortize/internal/schedule"
)

// File is a fully-materialized CSV schedule source.
type File struct {
	path    string
	records [][]string
}

// Open reads the CSV file at path into memory. Unreadable or malformed input
// is reported with the original cause attached.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Schedules exported by hand often have ragged rows and loose quoting;
	// accept both rather than failing the whole file.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: file is empty", path)
	}

	return &File{path: path, records: records}, nil
}

// Path returns the source file path.
func (f *File) Path() string {
	return f.path
}

// RawGrid returns every cell as text with no header semantics, for header
// detection.
func (f *File) RawGrid() ([][]string, error) {
	return f.records, nil
}

// LoadTable returns the header cells and data rows below the given header
// row index.
func (f *File) LoadTable(headerRow int) ([]schedule.Cell, [][]schedule.Cell, error) {
	if headerRow < 0 || headerRow >= len(f.records) {
		return nil, nil, fmt.Errorf("read %s: header row %d out of range", f.path, headerRow)
	}

	header := toCells(f.records[headerRow])
	rows := make([][]schedule.Cell, 0, len(f.records)-headerRow-1)
	for _, record := range f.records[headerRow+1:] {
		rows = append(rows, toCells(record))
	}
	return header, rows, nil
}

func toCells(record []string) []schedule.Cell {
	cells := make([]schedule.Cell, len(record))
	for i, value := range record {
		cells[i] = schedule.Cell{Text: value}
	}
	return cells
}
