// =============================================================================
// autoAmortize - Schedule Loading
// =============================================================================
//
// Shared loading pipeline used by the process and inspect commands:
//
//   1. Open the source file (dispatch on extension: .csv or .xlsx)
//   2. First pass: raw all-text grid, locate the header row by keyword
//   3. Second pass: typed table at the header row
//   4. Normalize into a schedule.Table
//
// Structural failures come back as the schedule package's sentinel errors,
// wrapped here with messages a bookkeeper can act on.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fahim-tazz/autoAmortize/internal/csvparser"
	"github.com/fahim-tazz/autoAmortize/internal/schedule"
	"github.com/fahim-tazz/autoAmortize/internal/xlsxparser"
)

// errUnsupportedFileType marks an input extension the tool cannot read.
var errUnsupportedFileType = errors.New("unsupported file type")

// scheduleSource is the two-pass contract both parsers satisfy.
type scheduleSource interface {
	RawGrid() ([][]string, error)
	LoadTable(headerRow int) ([]schedule.Cell, [][]schedule.Cell, error)
}

// loadedSchedule is the result of the loading pipeline.
type loadedSchedule struct {
	Table     *schedule.Table
	HeaderRow int
}

// loadSchedule runs the full loading pipeline for the file at path.
func loadSchedule(path string, headerKeywords []string) (*loadedSchedule, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("file not found at %s", absPath)
	}

	var source scheduleSource
	switch ext := strings.ToLower(filepath.Ext(absPath)); ext {
	case ".csv":
		f, err := csvparser.Open(absPath)
		if err != nil {
			return nil, err
		}
		source = f
	case ".xlsx", ".xlsm":
		f, err := xlsxparser.Open(absPath)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		source = f
	case ".xls":
		return nil, fmt.Errorf("%w %q: legacy .xls workbooks are not supported, please save the file as .xlsx or .csv", errUnsupportedFileType, ext)
	default:
		return nil, fmt.Errorf("%w %q: please provide a .xlsx or .csv file", errUnsupportedFileType, ext)
	}

	grid, err := source.RawGrid()
	if err != nil {
		return nil, err
	}

	headerRow, err := schedule.LocateHeaderKeywords(grid, headerKeywords)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: no row mentions any of %s", schedule.ErrHeaderNotFound, filepath.Base(absPath), strings.Join(headerKeywords, ", "))
	}

	header, rows, err := source.LoadTable(headerRow)
	if err != nil {
		return nil, err
	}

	table, err := schedule.Normalize(header, rows)
	if err != nil {
		return nil, err
	}
	return &loadedSchedule{Table: table, HeaderRow: headerRow}, nil
}
