// =============================================================================
// autoAmortize - Header Row Locator
// =============================================================================
//
// Real-world amortization spreadsheets rarely start with the table itself:
// there are title rows, company names, blank spacer rows, sometimes a logo
// cell. The locator scans a raw, headerless grid top to bottom and returns
// the index of the first row that looks like the column header, using a
// keyword heuristic over lower-cased cell text.
//
// =============================================================================

package schedule

import "strings"

// DefaultHeaderKeywords are the substrings that identify a header row in a
// prepayment schedule. A row counts as the header if ANY of its cells
// contains ANY keyword, case-insensitively.
var DefaultHeaderKeywords = []string{"items", "invoice", "amount"}

// LocateHeader scans grid rows top to bottom for the first row containing a
// default header keyword. The scan is read-only. Returns ErrHeaderNotFound
// when no row matches.
func LocateHeader(grid [][]string) (int, error) {
	return LocateHeaderKeywords(grid, DefaultHeaderKeywords)
}

// LocateHeaderKeywords is LocateHeader with a caller-supplied keyword set,
// for schedules whose headers use different terminology.
func LocateHeaderKeywords(grid [][]string, keywords []string) (int, error) {
	for i, row := range grid {
		for _, cell := range row {
			text := strings.ToLower(strings.TrimSpace(cell))
			if text == "" {
				continue
			}
			for _, keyword := range keywords {
				if strings.Contains(text, keyword) {
					return i, nil
				}
			}
		}
	}
	return 0, ErrHeaderNotFound
}
