package csvparser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahim-tazz/autoAmortize/internal/schedule"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const sampleSchedule = `ACME Ltd,,,
Prepayment schedule,,,
Items,Invoice number,Jan24,Feb24
Office rent,1001,500,500
Insurance,1002,,120
,,,
,Total,500,620
`

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestOpenEmptyFile(t *testing.T) {
	path := writeTempCSV(t, "")
	_, err := Open(path)
	assert.Error(t, err)
}

func TestRawGrid(t *testing.T) {
	f, err := Open(writeTempCSV(t, sampleSchedule))
	require.NoError(t, err)

	grid, err := f.RawGrid()
	require.NoError(t, err)
	require.Len(t, grid, 7)
	assert.Equal(t, "ACME Ltd", grid[0][0])
	assert.Equal(t, "Items", grid[2][0])
}

func TestLoadTable(t *testing.T) {
	f, err := Open(writeTempCSV(t, sampleSchedule))
	require.NoError(t, err)

	header, rows, err := f.LoadTable(2)
	require.NoError(t, err)
	require.Len(t, header, 4)
	assert.Equal(t, "Invoice number", header[1].Text)
	assert.Nil(t, header[2].Time) // CSV has no native typing
	assert.Len(t, rows, 4)
	assert.Equal(t, "Office rent", rows[0][0].Text)
}

func TestLoadTableHeaderRowOutOfRange(t *testing.T) {
	f, err := Open(writeTempCSV(t, sampleSchedule))
	require.NoError(t, err)

	_, _, err = f.LoadTable(99)
	assert.Error(t, err)
	_, _, err = f.LoadTable(-1)
	assert.Error(t, err)
}

func TestEndToEndPipeline(t *testing.T) {
	// The full pipeline over a CSV source: detect header, load, normalize.
	f, err := Open(writeTempCSV(t, sampleSchedule))
	require.NoError(t, err)

	grid, err := f.RawGrid()
	require.NoError(t, err)
	headerRow, err := schedule.LocateHeader(grid)
	require.NoError(t, err)
	assert.Equal(t, 2, headerRow)

	header, rows, err := f.LoadTable(headerRow)
	require.NoError(t, err)
	table, err := schedule.Normalize(header, rows)
	require.NoError(t, err)

	// The spacer row and the item-less total row are gone.
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Office rent", table.Item(0))

	first, last, err := table.MonthRange()
	require.NoError(t, err)
	assert.Equal(t, schedule.MonthKey{Year: 2024, Month: time.January}, *table.Columns[first].Month)
	assert.Equal(t, schedule.MonthKey{Year: 2024, Month: time.February}, *table.Columns[last].Month)
}
