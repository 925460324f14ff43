package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLabelEquivalentForms(t *testing.T) {
	// Every textual encoding of the same calendar month must collapse to the
	// identical canonical key.
	want := MonthKey{Year: 2024, Month: time.May}

	labels := []string{
		"May2024",
		"May24",
		"May-24",
		"May 24",
		"May/2024",
		"MAY-24",
		"may 2024",
		"01-May-2024",
		"01/05/2024",
		"01-05-24",
		"05-2024",
		" May-24 ",
	}
	for _, label := range labels {
		got, ok := ClassifyLabel(label)
		require.True(t, ok, "label %q should classify as a month", label)
		assert.Equal(t, want, got, "label %q", label)
	}
}

func TestClassifyLabelNonMonths(t *testing.T) {
	// Non-month labels are an expected outcome, not an error.
	labels := []string{
		"",
		"   ",
		"Items",
		"Invoice number",
		"Amount",
		"Total",
		"Notes",
		"May",             // month name with no year
		"Prepaid rent for the office",
		"2024",            // bare year
		"32-May-24",       // impossible day
		"31-Apr-24",       // April has 30 days
		"29-Feb-23",       // not a leap year
		"Mayyyy-24",       // not a month name
		"13-13-2024",      // neither segment can be a month
	}
	for _, label := range labels {
		_, ok := ClassifyLabel(label)
		assert.False(t, ok, "label %q should not classify as a month", label)
	}
}

func TestClassifyLabelVariousMonths(t *testing.T) {
	tests := []struct {
		label string
		want  MonthKey
	}{
		{"Jan24", MonthKey{2024, time.January}},
		{"Feb24", MonthKey{2024, time.February}},
		{"29-Feb-24", MonthKey{2024, time.February}}, // leap day accepted
		{"Sept24", MonthKey{2024, time.September}},   // 4-letter prefix
		{"September 2024", MonthKey{2024, time.September}},
		{"Dec-99", MonthKey{1999, time.December}},
		{"12-2024", MonthKey{2024, time.December}}, // month-year numeric
		{"15/06/2024", MonthKey{2024, time.June}},  // day dropped from the key
	}
	for _, tt := range tests {
		got, ok := ClassifyLabel(tt.label)
		require.True(t, ok, "label %q", tt.label)
		assert.Equal(t, tt.want, got, "label %q", tt.label)
	}
}

func TestClassifyLabelDayFirst(t *testing.T) {
	// Ambiguous numeric day/month pairs resolve day-first: 01/05 is the 1st
	// of May, not the 5th of January.
	got, ok := ClassifyLabel("01/05/2024")
	require.True(t, ok)
	assert.Equal(t, MonthKey{2024, time.May}, got)

	// When the middle segment cannot be a month, the segments swap.
	got, ok = ClassifyLabel("05/13/2024")
	require.True(t, ok)
	assert.Equal(t, MonthKey{2024, time.May}, got)
}

func TestClassifyLabelCenturyPivot(t *testing.T) {
	// Two-digit years resolve around TwoDigitYearPivot: >= 70 is the 1900s,
	// < 70 the 2000s.
	tests := []struct {
		label    string
		wantYear int
	}{
		{"May-69", 2069},
		{"May-70", 1970},
		{"May-99", 1999},
		{"May-00", 2000},
		{"May-24", 2024},
	}
	for _, tt := range tests {
		got, ok := ClassifyLabel(tt.label)
		require.True(t, ok, "label %q", tt.label)
		assert.Equal(t, tt.wantYear, got.Year, "label %q", tt.label)
		assert.Equal(t, time.May, got.Month, "label %q", tt.label)
	}
}

func TestClassifyTime(t *testing.T) {
	native := time.Date(2024, time.May, 17, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, MonthKey{2024, time.May}, ClassifyTime(native))
}

func TestParseTargetMonth(t *testing.T) {
	key, err := ParseTargetMonth("May-24")
	require.NoError(t, err)
	assert.Equal(t, MonthKey{2024, time.May}, key)

	// Target months and column labels go through the same classifier, so the
	// compact forms work here too.
	key, err = ParseTargetMonth("May24")
	require.NoError(t, err)
	assert.Equal(t, MonthKey{2024, time.May}, key)

	_, err = ParseTargetMonth("not a month")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestMonthKeyTime(t *testing.T) {
	key := MonthKey{2024, time.May}
	assert.Equal(t, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), key.Time())
	assert.Equal(t, "May 2024", key.String())
	assert.Equal(t, "May 24", key.Short())
}

func TestMonthKeyEndOfMonth(t *testing.T) {
	tests := []struct {
		key     MonthKey
		wantDay int
	}{
		{MonthKey{2024, time.May}, 31},
		{MonthKey{2024, time.June}, 30},
		{MonthKey{2024, time.February}, 29}, // leap year
		{MonthKey{2023, time.February}, 28},
		{MonthKey{2024, time.December}, 31},
	}
	for _, tt := range tests {
		end := tt.key.EndOfMonth()
		assert.Equal(t, tt.wantDay, end.Day(), "key %s", tt.key)
		assert.Equal(t, tt.key.Month, end.Month(), "key %s", tt.key)
		assert.Equal(t, tt.key.Year, end.Year(), "key %s", tt.key)
	}
}

func TestMonthKeyBefore(t *testing.T) {
	assert.True(t, MonthKey{2023, time.December}.Before(MonthKey{2024, time.January}))
	assert.True(t, MonthKey{2024, time.April}.Before(MonthKey{2024, time.May}))
	assert.False(t, MonthKey{2024, time.May}.Before(MonthKey{2024, time.May}))
	assert.False(t, MonthKey{2024, time.May}.Before(MonthKey{2024, time.April}))
}
