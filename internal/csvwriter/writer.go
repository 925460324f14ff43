// =============================================================================
// autoAmortize - Journal CSV Writer
// =============================================================================
//
// Renders journal entries as a CSV suitable for import into accounting
// software: a fixed header, day-first dates, amounts with two decimals and
// credits negative.
//
// =============================================================================

package csvwriter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/fahim-tazz/autoAmortize/internal/journal"
)

// entryDateLayout is the day-first date format expected by the importing
// accounting software.
const entryDateLayout = "02/01/2006"

var header = []string{"Date", "Description", "Reference", "Account", "Amount"}

// Write renders the entries as CSV to w.
func Write(w *csv.Writer, entries []journal.Entry) error {
	if err := w.Write(header); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			e.Date.Format(entryDateLayout),
			e.Description,
			e.Reference,
			e.Account,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteFile writes the entries to a new CSV file at path.
func WriteFile(path string, entries []journal.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := Write(csv.NewWriter(f), entries); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
