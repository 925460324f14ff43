// =============================================================================
// autoAmortize - Schedule Error Taxonomy
// =============================================================================
//
// Sentinel errors for the structural failures a schedule can exhibit. Each is
// distinct so the CLI layer can map it to a specific, actionable message
// instead of a generic one. Per-column classification failure is deliberately
// NOT in this list: a column that is not a month is an expected outcome and
// simply stays descriptive.
//
// =============================================================================

package schedule

import "errors"

var (
	// ErrHeaderNotFound means no row of the raw grid matched the header
	// keyword heuristic. Nothing can be processed without a header.
	ErrHeaderNotFound = errors.New("could not detect a header row")

	// ErrNoMonthColumns means normalization succeeded but not a single
	// column classified as a calendar month.
	ErrNoMonthColumns = errors.New("no month-formatted columns found in header")

	// ErrMissingItemColumn means the header has no item-name column, so rows
	// have no identity and journal lines cannot be described.
	ErrMissingItemColumn = errors.New("no item column found in header")

	// ErrInvalidMonth marks a user-supplied target month that the classifier
	// could not read. Callers re-prompt on this; it is never fatal.
	ErrInvalidMonth = errors.New("invalid month input")
)
