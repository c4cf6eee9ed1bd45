// =============================================================================
// Timesheet Reshaper - CSV Parser Module
// =============================================================================
//
// This module is responsible for parsing wide-format timesheet CSV files
// exported from time-tracking tools. It handles:
//   - Different delimiters (comma, pipe, tab, etc.)
//   - Quoted fields with lazy quote handling
//   - Rows shorter than the header (missing cells become empty strings)
//
// The first row of the file is the header; its order defines the column
// order for the whole run. Data rows are converted to maps keyed by header,
// with the ordered header carried separately on the Table.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/ginjaninja78/timesheet-reshaper/internal/config"
	"github.com/ginjaninja78/timesheet-reshaper/internal/timesheet"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the parsed table.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings from the configuration.
//
// RETURNS:
//   - A pointer to the parsed Table.
//   - An error if the file cannot be read or parsed.
//
// PARSING PROCESS:
//   1. Open the file and configure the CSV reader
//   2. Read all rows into memory (input is assumed to fit)
//   3. Take the first row as the ordered header
//   4. Convert each remaining row to a map of header -> value
//
// A file containing only a header (or nothing at all) yields a table with
// zero data rows; that is not an error.
func Parse(filePath string, settings config.CSVSettings) (*timesheet.Table, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	csvReader := csv.NewReader(bufio.NewReader(file))
	configureReader(csvReader, settings)

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	table := &timesheet.Table{
		SourceFile: filePath,
	}

	if len(allRows) == 0 {
		// Fully empty file: no header, no rows.
		return table, nil
	}

	table.Headers = cleanHeaders(allRows[0])
	table.Rows = buildRows(allRows[1:], table.Headers)

	return table, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	// Set the delimiter. Handle spelled-out names for common delimiters.
	switch settings.Delimiter {
	case "\\t", "tab", "TAB":
		reader.Comma = '\t'
	case "|", "pipe", "PIPE":
		reader.Comma = '|'
	case ";", "semicolon":
		reader.Comma = ';'
	default:
		if len(settings.Delimiter) > 0 {
			reader.Comma = rune(settings.Delimiter[0])
		} else {
			reader.Comma = ','
		}
	}

	// Allow variable number of fields per row; exports frequently drop
	// trailing empty cells.
	reader.FieldsPerRecord = -1

	// Allow lazy quotes (quotes that don't follow strict CSV rules).
	reader.LazyQuotes = true

	// Trim leading space from fields.
	reader.TrimLeadingSpace = true
}

// cleanHeaders cleans and normalizes header values.
//
// Headers are trimmed; an empty header gets a positional placeholder name so
// the column can still be addressed in the row maps.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))

	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}
		cleaned[i] = header
	}

	return cleaned
}

// buildRows converts raw data rows to maps keyed by header.
//
// Rows shorter than the header are padded with empty strings; cells beyond
// the header width are dropped. Fully empty rows are skipped.
func buildRows(rawRows [][]string, headers []string) []map[string]string {
	rows := make([]map[string]string, 0, len(rawRows))

	for _, raw := range rawRows {
		if isRowEmpty(raw) {
			continue
		}

		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(raw) {
				row[header] = strings.TrimSpace(raw[i])
			} else {
				row[header] = ""
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
