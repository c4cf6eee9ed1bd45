// =============================================================================
// Timesheet Reshaper - CSV Writer Module
// =============================================================================
//
// This module writes the tidy output file: a CSV with exactly three columns,
//
//   Date,Ticket,Time Spent
//
// followed by one row per record in the order the reshape produced them.
// The third header label contains a literal space; downstream consumers
// depend on it.
//
// =============================================================================

package csvwriter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/ginjaninja78/timesheet-reshaper/internal/timesheet"
)

// OutputHeader is the fixed header row of the tidy CSV.
var OutputHeader = []string{"Date", "Ticket", "Time Spent"}

// Write writes the records to a tidy CSV at the given path.
//
// PARAMETERS:
//   - outputPath: The path to write the CSV to. An existing file is
//     truncated. No guarantee is made about partial output on failure.
//   - records: The records to write, in order.
//
// RETURNS:
//   - An error if the file cannot be created or written.
//
// An empty record slice produces a header-only file.
func Write(outputPath string, records []timesheet.Record) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	writer := csv.NewWriter(file)

	if err := writer.Write(OutputHeader); err != nil {
		file.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, record := range records {
		row := []string{record.Date, record.Ticket, formatHours(record.TimeSpent)}
		if err := writer.Write(row); err != nil {
			file.Close()
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	return nil
}

// formatHours renders an hours value with the shortest representation that
// round-trips: 2 stays "2", 3.5 stays "3.5".
func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
