// =============================================================================
// autoAmortize - Journal Entry Builder
// =============================================================================
//
// Turns the target month's column of a normalized schedule into double-entry
// journal lines. For every row with a non-blank, non-zero amortization amount
// in the target month, two offsetting lines are produced:
//
//   Debit  - the item's expense ledger account, +amount
//   Credit - the prepayments ledger account,    -amount
//
// Entries are dated to the last calendar day of the target month. Expense
// ledger codes are per item and come from a caller-supplied lookup, which at
// the CLI is an interactive prompt.
//
// =============================================================================

package journal

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fahim-tazz/autoAmortize/internal/schedule"
)

// ErrMonthNotCovered means the target month has no column in the schedule.
var ErrMonthNotCovered = errors.New("target month not present in schedule")

// Entry is a single journal line in the output CSV.
type Entry struct {
	Date        time.Time
	Description string
	Reference   string
	Account     string
	Amount      float64
}

// AccountLookup resolves the expense ledger account for an item name.
type AccountLookup func(item string) (string, error)

// Build produces the debit/credit line pairs for the target month.
// Rows whose amount in the target month's column is blank or zero are
// skipped - they carry no amortization this month.
func Build(t *schedule.Table, target schedule.MonthKey, prepaymentsAccount string, expenseAccount AccountLookup) ([]Entry, error) {
	col, ok := t.MonthColumn(target)
	if !ok {
		return nil, fmt.Errorf("%s: %w", target, ErrMonthNotCovered)
	}

	date := target.EndOfMonth()
	titler := cases.Title(language.English)

	var entries []Entry
	for i := range t.Rows {
		amount, ok := t.Amount(i, col)
		if !ok || amount == 0 {
			continue
		}

		item := titler.String(t.Item(i))
		account, err := expenseAccount(item)
		if err != nil {
			return nil, err
		}

		amount = math.Abs(math.Round(amount*100) / 100)
		description := "Prepayment amortization for " + item
		reference := t.Invoice(i)

		entries = append(entries,
			Entry{Date: date, Description: description, Reference: reference, Account: account, Amount: amount},
			Entry{Date: date, Description: description, Reference: reference, Account: prepaymentsAccount, Amount: -amount},
		)
	}
	return entries, nil
}
