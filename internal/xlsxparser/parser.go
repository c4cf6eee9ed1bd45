// =============================================================================
// Timesheet Reshaper - XLSX Parser Module
// =============================================================================
//
// This module reads wide-format timesheets exported as XLSX workbooks and
// produces the same Table the CSV parser does, so the rest of the pipeline
// does not care which format the input arrived in.
//
// CONVENTIONS:
//   - Only the first sheet of the workbook is read.
//   - The first row is the header; its order defines the column order.
//   - Cell values are taken as the strings excelize renders them to.
//   - Rows shorter than the header are padded with empty strings, matching
//     the CSV parser's behavior for missing cells.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/timesheet-reshaper/internal/timesheet"
	"github.com/xuri/excelize/v2"
)

// Parse reads an XLSX workbook and returns the parsed table.
//
// PARAMETERS:
//   - filePath: The path to the XLSX file.
//
// RETURNS:
//   - A pointer to the parsed Table.
//   - An error if the workbook cannot be opened or read.
func Parse(filePath string) (*timesheet.Table, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	allRows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	table := &timesheet.Table{
		SourceFile: filePath,
	}

	if len(allRows) == 0 {
		return table, nil
	}

	table.Headers = cleanHeaders(allRows[0])
	table.Rows = buildRows(allRows[1:], table.Headers)

	return table, nil
}

// cleanHeaders trims header values and names empty headers positionally.
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

// buildRows converts raw sheet rows to maps keyed by header. excelize drops
// trailing empty cells from each row, so short rows are padded here.
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
