package csvparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/timesheet-reshaper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func settings(delimiter string) config.CSVSettings {
	return config.CSVSettings{Delimiter: delimiter}
}

func TestParsePreservesHeaderOrder(t *testing.T) {
	path := writeFile(t, "in.csv",
		"Ticket,2025-05-02,2025-05-01\n"+
			"T1,1,2\n")

	table, err := Parse(path, settings(","))
	require.NoError(t, err)

	// Header order is the source order, not sorted.
	assert.Equal(t, []string{"Ticket", "2025-05-02", "2025-05-01"}, table.Headers)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "T1", table.Rows[0]["Ticket"])
	assert.Equal(t, "1", table.Rows[0]["2025-05-02"])
	assert.Equal(t, "2", table.Rows[0]["2025-05-01"])
}

func TestParseShortRowsPadded(t *testing.T) {
	path := writeFile(t, "in.csv",
		"Ticket,2025-05-01,2025-05-02\n"+
			"T1,2\n")

	table, err := Parse(path, settings(","))
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "", table.Rows[0]["2025-05-02"])
}

func TestParseSkipsEmptyRows(t *testing.T) {
	path := writeFile(t, "in.csv",
		"Ticket,2025-05-01\n"+
			"T1,2\n"+
			",\n"+
			"T2,3\n")

	table, err := Parse(path, settings(","))
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "T2", table.Rows[1]["Ticket"])
}

func TestParseHeaderOnly(t *testing.T) {
	path := writeFile(t, "in.csv", "Ticket,2025-05-01\n")

	table, err := Parse(path, settings(","))
	require.NoError(t, err)

	assert.Equal(t, []string{"Ticket", "2025-05-01"}, table.Headers)
	assert.Equal(t, 0, table.RowCount())
}

func TestParseEmptyFile(t *testing.T) {
	path := writeFile(t, "in.csv", "")

	table, err := Parse(path, settings(","))
	require.NoError(t, err)

	assert.Empty(t, table.Headers)
	assert.Equal(t, 0, table.RowCount())
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.csv"), settings(","))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}

func TestParseAlternateDelimiters(t *testing.T) {
	tests := []struct {
		name      string
		delimiter string
		content   string
	}{
		{"pipe", "|", "Ticket|2025-05-01\nT1|2\n"},
		{"pipe spelled out", "pipe", "Ticket|2025-05-01\nT1|2\n"},
		{"semicolon", ";", "Ticket;2025-05-01\nT1;2\n"},
		{"tab", "tab", "Ticket\t2025-05-01\nT1\t2\n"},
		{"empty falls back to comma", "", "Ticket,2025-05-01\nT1,2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "in.csv", tt.content)

			table, err := Parse(path, settings(tt.delimiter))
			require.NoError(t, err)
			assert.Equal(t, []string{"Ticket", "2025-05-01"}, table.Headers)
			require.Len(t, table.Rows, 1)
			assert.Equal(t, "2", table.Rows[0]["2025-05-01"])
		})
	}
}

func TestParseNamesEmptyHeaders(t *testing.T) {
	path := writeFile(t, "in.csv",
		"Ticket,,2025-05-01\n"+
			"T1,9,2\n")

	table, err := Parse(path, settings(","))
	require.NoError(t, err)

	assert.Equal(t, []string{"Ticket", "Column_2", "2025-05-01"}, table.Headers)
	assert.Equal(t, "9", table.Rows[0]["Column_2"])
}
