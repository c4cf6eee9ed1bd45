// =============================================================================
// Timesheet Reshaper - Shared Types
// =============================================================================
//
// This package contains the shared data model used across multiple modules
// to avoid import cycles. Types defined here are used by:
//   - csvparser
//   - xlsxparser
//   - reshape
//   - csvwriter
//
// =============================================================================

package timesheet

// =============================================================================
// TABLE TYPES
// =============================================================================

// Table represents a parsed wide-format timesheet.
//
// Each row is one ticket; each column other than the ticket column is a
// calendar date label. Column order matters for the output ordering, so the
// header order is carried alongside the per-row maps and is never re-derived
// from an individual row.
type Table struct {
	// Headers contains the column headers in source order.
	// The first row of the input file defines this order for the whole run.
	Headers []string

	// Rows contains the data rows as maps of header -> cell value.
	// Using maps allows for easy field access by name; ordering comes from
	// Headers, not from the maps.
	Rows []map[string]string

	// SourceFile is the path to the source file.
	SourceFile string
}

// RowCount returns the number of data rows (excluding the header).
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns in the table.
func (t *Table) ColumnCount() int {
	return len(t.Headers)
}

// HasColumn reports whether the header contains the given column label.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Headers {
		if h == name {
			return true
		}
	}
	return false
}

// =============================================================================
// RECORD TYPE
// =============================================================================

// Record is a single long/tidy observation: one ticket spent TimeSpent hours
// on one date. Records only exist for cells that parsed to a finite value
// strictly greater than zero.
type Record struct {
	// Date is the date-column label from the input header, verbatim.
	Date string

	// Ticket is the row's ticket value, verbatim (may be empty).
	Ticket string

	// TimeSpent is the parsed hours value. Always finite and > 0.
	TimeSpent float64
}
