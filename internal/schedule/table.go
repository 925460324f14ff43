// =============================================================================
// autoAmortize - Schedule Table Normalizer
// =============================================================================
//
// The normalizer turns the second, typed parse pass of a source file into a
// Table: structurally invalid rows are dropped, and every column label is run
// through the month classifier. Rather than rewriting labels in place, the
// Table carries an explicit ordered schema of (original label, resolved month
// key or nil) pairs - a column either IS a month column or stays descriptive,
// and both facts are visible side by side.
//
// Rows dropped during normalization:
//   - rows empty across all columns (spacer rows)
//   - rows with an empty item-name cell (trailing Total / Balance rows)
//
// After construction the Table is treated as read-only.
//
// =============================================================================

package schedule

import (
	"strconv"
	"strings"
	"time"
)

// Keywords identifying the fixed descriptive columns within the header.
const (
	itemColumnKeyword    = "item"
	invoiceColumnKeyword = "invoice"
)

// Cell is a single value from the typed parse pass. Text always carries the
// cell's textual rendering; Time is set in addition when the source format
// stored a native date value (XLSX date cells).
type Cell struct {
	Text string
	Time *time.Time
}

// IsEmpty reports whether the cell holds no value at all.
func (c Cell) IsEmpty() bool {
	return c.Time == nil && strings.TrimSpace(c.Text) == ""
}

// Amount reads the cell as a numeric amount. Thousands separators are
// tolerated. Returns false for blank or non-numeric cells.
func (c Cell) Amount() (float64, bool) {
	text := strings.TrimSpace(c.Text)
	if text == "" {
		return 0, false
	}
	text = strings.ReplaceAll(text, ",", "")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Column is one entry of the table schema: the label exactly as it appeared
// in the source, plus the canonical month key when the label classified as a
// calendar month. Month == nil marks a descriptive column.
type Column struct {
	Label string
	Month *MonthKey
}

// IsMonth reports whether the column is a month column.
func (c Column) IsMonth() bool {
	return c.Month != nil
}

// Table is a normalized amortization schedule: an ordered column schema and
// the surviving data rows, indexed contiguously.
type Table struct {
	Columns []Column
	Rows    [][]Cell

	itemCol    int
	invoiceCol int
}

// Normalize builds a Table from the typed header and data rows of the second
// parse pass. See the file comment for the row-dropping rules. Returns
// ErrMissingItemColumn when no header cell names the item column.
func Normalize(header []Cell, rows [][]Cell) (*Table, error) {
	columns := make([]Column, len(header))
	itemCol, invoiceCol := -1, -1

	for i, cell := range header {
		label := strings.TrimSpace(cell.Text)
		col := Column{Label: label}

		// Native date header cells classify directly; text labels go
		// through the full classifier. Failure is silent - the column
		// simply stays descriptive.
		if cell.Time != nil {
			key := ClassifyTime(*cell.Time)
			col.Month = &key
		} else if key, ok := ClassifyLabel(label); ok {
			col.Month = &key
		}

		if col.Month == nil {
			lower := strings.ToLower(label)
			if itemCol < 0 && strings.Contains(lower, itemColumnKeyword) {
				itemCol = i
			}
			if invoiceCol < 0 && strings.Contains(lower, invoiceColumnKeyword) {
				invoiceCol = i
			}
		}
		columns[i] = col
	}

	if itemCol < 0 {
		return nil, ErrMissingItemColumn
	}

	kept := make([][]Cell, 0, len(rows))
	for _, row := range rows {
		row = padRow(row, len(columns))
		if rowIsEmpty(row) {
			continue
		}
		if row[itemCol].IsEmpty() {
			continue
		}
		kept = append(kept, row)
	}

	return &Table{
		Columns:    columns,
		Rows:       kept,
		itemCol:    itemCol,
		invoiceCol: invoiceCol,
	}, nil
}

// ItemColumn returns the index of the item-name column.
func (t *Table) ItemColumn() int {
	return t.itemCol
}

// InvoiceColumn returns the index of the invoice-number column, or -1 when
// the source has none.
func (t *Table) InvoiceColumn() int {
	return t.invoiceCol
}

// Item returns the item name of the given row.
func (t *Table) Item(row int) string {
	return strings.TrimSpace(t.Rows[row][t.itemCol].Text)
}

// Invoice returns the invoice number of the given row as text, or "" when
// the table has no invoice column or the cell is blank.
func (t *Table) Invoice(row int) string {
	if t.invoiceCol < 0 {
		return ""
	}
	return strings.TrimSpace(t.Rows[row][t.invoiceCol].Text)
}

// Amount reads the numeric amount at (row, col).
func (t *Table) Amount(row, col int) (float64, bool) {
	return t.Rows[row][col].Amount()
}

// MonthRange returns the first and last month-column indices in table order.
// Table order reflects the source layout, NOT chronological order. Returns
// ErrNoMonthColumns when no column classified as a month; without at least
// one month column there is nothing to amortize.
func (t *Table) MonthRange() (first, last int, err error) {
	first, last = -1, -1
	for i, col := range t.Columns {
		if !col.IsMonth() {
			continue
		}
		if first < 0 {
			first = i
		}
		last = i
	}
	if first < 0 {
		return 0, 0, ErrNoMonthColumns
	}
	return first, last, nil
}

// MonthColumn returns the index of the column bearing the given canonical
// month key, comparing keys produced by the same classifier on both sides.
func (t *Table) MonthColumn(key MonthKey) (int, bool) {
	for i, col := range t.Columns {
		if col.IsMonth() && *col.Month == key {
			return i, true
		}
	}
	return 0, false
}

func rowIsEmpty(row []Cell) bool {
	for _, cell := range row {
		if !cell.IsEmpty() {
			return false
		}
	}
	return true
}

// padRow extends short rows with empty cells so every row indexes safely up
// to the column count. Extra trailing cells beyond the header are dropped.
func padRow(row []Cell, width int) []Cell {
	if len(row) == width {
		return row
	}
	if len(row) > width {
		return row[:width]
	}
	padded := make([]Cell, width)
	copy(padded, row)
	return padded
}
