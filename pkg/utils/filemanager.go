// =============================================================================
// autoAmortize - Output File Manager
// =============================================================================
//
// File management utilities for the output side of the tool:
//   - Directory management (ensure the outputs directory exists)
//   - Sequential output numbering (0.csv, 1.csv, ... never overwrite a past
//     run; the next number is max existing + 1)
//   - Output file naming with placeholders for alternative naming schemes
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// EnsureDir creates the directory (and any parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// NextSequence scans dir for CSV files whose base name is a bare number
// ("0.csv", "17.csv") and returns the highest number plus one, so past runs
// are never overwritten. An empty or missing directory yields 0. Files with
// non-numeric names are ignored.
func NextSequence(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("scan directory %s: %w", dir, err)
	}

	next := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".csv") {
			continue
		}
		stem := name[:len(name)-len(filepath.Ext(name))]
		n, err := strconv.Atoi(stem)
		if err != nil || n < 0 {
			continue
		}
		if n+1 > next {
			next = n + 1
		}
	}
	return next, nil
}

// GenerateOutputFileName expands a naming format into a concrete file name.
//
// Placeholders:
//   {seq}       - Next sequential number in the output directory
//   {uuid}      - A random UUID
//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//   {date}      - Current date (YYYYMMDD)
//
// A ".csv" extension is appended when the format does not already end in one.
//
// Example:
//   format "journal_{date}_{seq}" with seq 3 -> "journal_20240531_3.csv"
func GenerateOutputFileName(format string, seq int) string {
	now := time.Now()

	replacements := map[string]string{
		"{seq}":       strconv.Itoa(seq),
		"{uuid}":      uuid.New().String(),
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if !strings.HasSuffix(strings.ToLower(result), ".csv") {
		result += ".csv"
	}
	return result
}

// NextOutputPath combines EnsureDir, NextSequence and GenerateOutputFileName
// into the full path the next output file should be written to.
func NextOutputPath(dir, format string) (string, error) {
	if err := EnsureDir(dir); err != nil {
		return "", err
	}
	seq, err := NextSequence(dir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, GenerateOutputFileName(format, seq)), nil
}
