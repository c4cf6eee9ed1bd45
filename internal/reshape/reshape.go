// =============================================================================
// Timesheet Reshaper - Reshape Engine
// =============================================================================
//
// This module provides the core wide-to-long transform. The input is one row
// per ticket with one column per calendar date; the output is one record per
// observed (date, ticket, hours) triple.
//
// FILTERING RULES:
//   A cell produces a record only when its permissive numeric parse succeeds
//   and the parsed value is strictly greater than zero. Empty cells,
//   non-numeric cells, zeros, and negative values are silently skipped; they
//   are expected filtering outcomes, not errors.
//
// ORDERING:
//   Records are emitted row by row in input order, and within a row in the
//   date-column order taken from the header. No sorting or deduplication is
//   performed; two rows with the same ticket value produce separate records.
//
// =============================================================================

package reshape

import (
	"math"
	"strconv"
	"strings"

	"github.com/ginjaninja78/timesheet-reshaper/internal/timesheet"
)

// =============================================================================
// MELT FUNCTION
// =============================================================================

// Melt reshapes a wide-format table into an ordered slice of tidy records.
//
// PARAMETERS:
//   - table: The parsed wide-format timesheet.
//   - ticketColumn: The header label of the ticket column (e.g. "Ticket").
//     Every other header label is treated as an opaque date label.
//
// RETURNS:
//   - The emitted records, in row-major order.
//
// An empty table (no data rows) yields no records. The set of date columns
// is derived once from the header and applied uniformly to every row.
func Melt(table *timesheet.Table, ticketColumn string) []timesheet.Record {
	if table == nil || len(table.Rows) == 0 {
		return nil
	}

	// Derive the date columns once: header order minus the ticket column.
	dateColumns := make([]string, 0, len(table.Headers))
	for _, header := range table.Headers {
		if header == ticketColumn {
			continue
		}
		dateColumns = append(dateColumns, header)
	}

	var records []timesheet.Record

	for _, row := range table.Rows {
		ticket := row[ticketColumn]

		for _, date := range dateColumns {
			hours, ok := ParseLeadingFloat(row[date])
			if !ok || hours <= 0 {
				continue
			}

			records = append(records, timesheet.Record{
				Date:      date,
				Ticket:    ticket,
				TimeSpent: hours,
			})
		}
	}

	return records
}

// =============================================================================
// PERMISSIVE NUMERIC PARSE
// =============================================================================

// ParseLeadingFloat parses the longest numeric prefix of a string, ignoring
// any trailing non-numeric characters, the way a leading-prefix float parser
// does. Leading and trailing whitespace is tolerated.
//
// EXAMPLES:
//   "2"      -> 2, true
//   " 3.5 "  -> 3.5, true
//   "2h"     -> 2, true        (trailing text ignored)
//   "-1"     -> -1, true       (callers filter non-positive values)
//   "1e2d"   -> 100, true
//   ""       -> 0, false
//   "abc"    -> 0, false       (no numeric prefix)
//
// A strict full-string parser must not be substituted here: values like "2h"
// are required to parse to 2. Non-finite results are rejected.
func ParseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	end := numericPrefixLen(s)
	if end == 0 {
		return 0, false
	}

	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}

	return value, true
}

// numericPrefixLen returns the length of the longest prefix of s that forms
// a valid decimal floating-point literal: an optional sign, digits with an
// optional fractional part, and an optional exponent. Returns 0 when no
// digits are present.
func numericPrefixLen(s string) int {
	i := 0

	// Optional sign.
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	// Integer digits.
	sawDigit := false
	for i < len(s) && isDigit(s[i]) {
		i++
		sawDigit = true
	}

	// Optional fractional part.
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
			sawDigit = true
		}
		// A bare trailing dot with no digits on either side is not numeric.
		if sawDigit {
			i = j
		}
	}

	if !sawDigit {
		return 0
	}

	// Optional exponent. Only consumed when at least one exponent digit
	// follows; "2e" must parse as 2, not fail.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
