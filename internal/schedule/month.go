// =============================================================================
// autoAmortize - Month Label Classifier
// =============================================================================
//
// This file implements the column-label classifier: deciding whether a header
// cell denotes a calendar month and, if so, reducing it to a canonical
// (year, month) key. Amortization schedules in the wild label their month
// columns in wildly inconsistent ways:
//
//   "May2024"  "May24"  "May-24"  "May 2024"  "01-May-2024"  "01/05/2024"
//   "05-2024"  ...or a native spreadsheet date cell.
//
// All of these must collapse to the same MonthKey so that column lookup and
// the user's target-month input compare equal. Classification is a
// two-outcome result (key, ok) - a label that is not a month is an expected,
// silent outcome, never an error.
//
// =============================================================================

package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TwoDigitYearPivot controls century inference for two-digit years:
// values >= the pivot resolve to the 1900s, values below it to the 2000s.
// "May-69" is therefore May 2069 and "May-70" is May 1970. This mirrors the
// convention of common date-parsing libraries and is fixed here as an
// explicit constant so the behavior is testable rather than implicit.
const TwoDigitYearPivot = 70

// MonthKey is the canonical identity of a calendar month: a (year, month)
// pair normalized to the first day of the month. It is a pure equality and
// ordering key - the day component of whatever text produced it is dropped.
type MonthKey struct {
	Year  int
	Month time.Month
}

// Time returns the key as midnight UTC on the first day of the month.
func (k MonthKey) Time() time.Time {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last calendar day of the month. Journal entries are
// dated to this day.
func (k MonthKey) EndOfMonth() time.Time {
	return time.Date(k.Year, k.Month+1, 0, 0, 0, 0, 0, time.UTC)
}

// Before reports whether k is chronologically before other.
func (k MonthKey) Before(other MonthKey) bool {
	return k.Year < other.Year || (k.Year == other.Year && k.Month < other.Month)
}

// String renders the key as e.g. "May 2024".
func (k MonthKey) String() string {
	return k.Time().Format("Jan 2006")
}

// Short renders the key as e.g. "May 24", for compact range messages.
func (k MonthKey) Short() string {
	return k.Time().Format("Jan 06")
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

var (
	// sepNormalizer folds the separator variants seen in month labels
	// (spaces, slashes) down to a single dash.
	sepNormalizer = strings.NewReplacer(" ", "-", "/", "-")

	// compactPattern matches labels like "May24" or "September2024": a month
	// name glued directly to a 2-4 digit year with no separator.
	compactPattern = regexp.MustCompile(`^([A-Za-z]{3,9})(\d{2,4})$`)

	// fullDatePattern matches labels that already carry a day segment, like
	// "01-May-2024", "01/05/24" or "010524": day, then day-or-month, then
	// year, with optional separators.
	fullDatePattern = regexp.MustCompile(`^\d{1,2}[-/ ]?(?:\d{1,2}|[A-Za-z]{3,9})[-/ ]?\d{2,4}$`)

	// dayFirstPattern splits a separator-normalized date into its three
	// segments for day-first interpretation.
	dayFirstPattern = regexp.MustCompile(`^(\d{1,2})-?([A-Za-z]{3,9}|\d{1,2})-?(\d{2,4})$`)
)

// ClassifyLabel decides whether a textual column label denotes a calendar
// month. On success it returns the canonical MonthKey and true; any label
// that cannot be read as a month returns (zero, false). It never panics and
// never returns an error - most columns in a schedule are not months.
//
// Ambiguous numeric day/month pairs are resolved day-first ("01/05/2024" is
// the 1st of May), matching the convention used for the rest of the tool.
func ClassifyLabel(label string) (MonthKey, bool) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return MonthKey{}, false
	}

	clean := sepNormalizer.Replace(trimmed)

	// Compact forms get a separator inserted between name and year so the
	// day-first parser sees distinct segments.
	if m := compactPattern.FindStringSubmatch(clean); m != nil {
		clean = m[1] + "-" + m[2]
	}

	// Labels that already include a day segment parse as-is; everything else
	// gets a synthetic first-of-month day prepended.
	if fullDatePattern.MatchString(trimmed) {
		return parseDayFirst(trimmed)
	}
	return parseDayFirst("01-" + clean)
}

// ClassifyTime reduces a native date value (e.g. an XLSX date cell) to its
// canonical month key.
func ClassifyTime(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// ParseTargetMonth parses a user-supplied target month ("May-24", "May24",
// "May 2024", ...). It runs the exact classifier used on column labels, so a
// target accepted here compares equal to the matching column key.
func ParseTargetMonth(input string) (MonthKey, error) {
	key, ok := ClassifyLabel(input)
	if !ok {
		return MonthKey{}, fmt.Errorf("%q is not a recognizable month: %w", strings.TrimSpace(input), ErrInvalidMonth)
	}
	return key, nil
}

// parseDayFirst interprets a date string as day/month/year after normalizing
// separators. The middle segment may be a month name or a number; numeric
// pairs prefer day-first, but when the middle segment cannot be a month and
// the first can, the two swap (so "05-2024" still reads as May 2024).
func parseDayFirst(s string) (MonthKey, bool) {
	clean := sepNormalizer.Replace(strings.TrimSpace(s))
	m := dayFirstPattern.FindStringSubmatch(clean)
	if m == nil {
		return MonthKey{}, false
	}

	day, _ := strconv.Atoi(m[1])
	year, ok := resolveYear(m[3])
	if !ok {
		return MonthKey{}, false
	}

	var month time.Month
	if isAlphabetic(m[2]) {
		month, ok = monthByName(m[2])
		if !ok {
			return MonthKey{}, false
		}
	} else {
		mid, _ := strconv.Atoi(m[2])
		switch {
		case mid >= 1 && mid <= 12:
			month = time.Month(mid)
		case day >= 1 && day <= 12 && mid >= 1 && mid <= 31:
			day, month = mid, time.Month(day)
		default:
			return MonthKey{}, false
		}
	}

	if day < 1 || day > daysInMonth(year, month) {
		return MonthKey{}, false
	}
	return MonthKey{Year: year, Month: month}, true
}

// monthByName resolves a month name by case-insensitive unique prefix of at
// least three letters, so "sep", "Sept" and "SEPTEMBER" all resolve to
// September. Ambiguous or unknown prefixes fail.
func monthByName(s string) (time.Month, bool) {
	lower := strings.ToLower(s)
	if len(lower) < 3 {
		return 0, false
	}
	var found time.Month
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), lower) {
			if found != 0 {
				return 0, false
			}
			found = m
		}
	}
	return found, found != 0
}

// resolveYear accepts four-digit years verbatim and two-digit years via the
// TwoDigitYearPivot rule. Three-digit years are rejected.
func resolveYear(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	switch len(s) {
	case 4:
		return n, true
	case 2:
		if n >= TwoDigitYearPivot {
			return 1900 + n, true
		}
		return 2000 + n, true
	default:
		return 0, false
	}
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return len(s) > 0
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
