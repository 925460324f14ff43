package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahim-tazz/autoAmortize/internal/schedule"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScheduleCSV(t *testing.T) {
	path := writeTempFile(t, "schedule.csv", `ACME Ltd,,,
Items,Invoice number,Jan24,Feb24
Office rent,1001,500,500
`)

	loaded, err := loadSchedule(path, schedule.DefaultHeaderKeywords)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.HeaderRow)
	assert.Len(t, loaded.Table.Rows, 1)
}

func TestLoadScheduleMissingFile(t *testing.T) {
	_, err := loadSchedule(filepath.Join(t.TempDir(), "nope.csv"), schedule.DefaultHeaderKeywords)
	assert.ErrorContains(t, err, "file not found")
}

func TestLoadScheduleUnsupportedTypes(t *testing.T) {
	path := writeTempFile(t, "schedule.xls", "not really a workbook")
	_, err := loadSchedule(path, schedule.DefaultHeaderKeywords)
	assert.ErrorIs(t, err, errUnsupportedFileType)

	path = writeTempFile(t, "schedule.txt", "plain text")
	_, err = loadSchedule(path, schedule.DefaultHeaderKeywords)
	assert.ErrorIs(t, err, errUnsupportedFileType)
}

func TestLoadScheduleHeaderNotFound(t *testing.T) {
	path := writeTempFile(t, "schedule.csv", `ACME Ltd,,
just,some,cells
`)
	_, err := loadSchedule(path, schedule.DefaultHeaderKeywords)
	assert.ErrorIs(t, err, schedule.ErrHeaderNotFound)
}
