package reshape

import (
	"testing"

	"github.com/ginjaninja78/timesheet-reshaper/internal/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(headers []string, rows ...map[string]string) *timesheet.Table {
	return &timesheet.Table{Headers: headers, Rows: rows}
}

func TestMeltFiltersAndOrders(t *testing.T) {
	in := table(
		[]string{"Ticket", "2025-05-01", "2025-05-02"},
		map[string]string{"Ticket": "T1", "2025-05-01": "2", "2025-05-02": "0"},
		map[string]string{"Ticket": "T2", "2025-05-01": "", "2025-05-02": "3.5"},
	)

	got := Melt(in, "Ticket")

	want := []timesheet.Record{
		{Date: "2025-05-01", Ticket: "T1", TimeSpent: 2},
		{Date: "2025-05-02", Ticket: "T2", TimeSpent: 3.5},
	}
	assert.Equal(t, want, got)
}

func TestMeltSkipsNegativeValues(t *testing.T) {
	in := table(
		[]string{"Ticket", "2025-05-01", "2025-05-02"},
		map[string]string{"Ticket": "T1", "2025-05-01": "-1", "2025-05-02": "1"},
	)

	got := Melt(in, "Ticket")

	require.Len(t, got, 1)
	assert.Equal(t, "2025-05-02", got[0].Date)
}

func TestMeltPermissiveParsing(t *testing.T) {
	in := table(
		[]string{"Ticket", "2025-05-01", "2025-05-02"},
		map[string]string{"Ticket": "T1", "2025-05-01": "2h", "2025-05-02": "abc"},
	)

	got := Melt(in, "Ticket")

	require.Len(t, got, 1)
	assert.Equal(t, timesheet.Record{Date: "2025-05-01", Ticket: "T1", TimeSpent: 2}, got[0])
}

func TestMeltEmptyInput(t *testing.T) {
	assert.Empty(t, Melt(table([]string{"Ticket", "2025-05-01"}), "Ticket"))
	assert.Empty(t, Melt(&timesheet.Table{}, "Ticket"))
	assert.Empty(t, Melt(nil, "Ticket"))
}

func TestMeltRowMajorOrdering(t *testing.T) {
	in := table(
		[]string{"Ticket", "d1", "d2", "d3"},
		map[string]string{"Ticket": "A", "d1": "1", "d2": "2", "d3": "3"},
		map[string]string{"Ticket": "B", "d1": "4", "d2": "5", "d3": "6"},
	)

	got := Melt(in, "Ticket")

	require.Len(t, got, 6)
	want := []timesheet.Record{
		{Date: "d1", Ticket: "A", TimeSpent: 1},
		{Date: "d2", Ticket: "A", TimeSpent: 2},
		{Date: "d3", Ticket: "A", TimeSpent: 3},
		{Date: "d1", Ticket: "B", TimeSpent: 4},
		{Date: "d2", Ticket: "B", TimeSpent: 5},
		{Date: "d3", Ticket: "B", TimeSpent: 6},
	}
	assert.Equal(t, want, got)
}

func TestMeltDuplicateTicketsEmittedSeparately(t *testing.T) {
	in := table(
		[]string{"Ticket", "2025-05-01"},
		map[string]string{"Ticket": "T1", "2025-05-01": "1"},
		map[string]string{"Ticket": "T1", "2025-05-01": "2"},
	)

	got := Melt(in, "Ticket")

	// No summation or deduplication: two rows, input order.
	want := []timesheet.Record{
		{Date: "2025-05-01", Ticket: "T1", TimeSpent: 1},
		{Date: "2025-05-01", Ticket: "T1", TimeSpent: 2},
	}
	assert.Equal(t, want, got)
}

func TestMeltEmptyTicketPassedThrough(t *testing.T) {
	in := table(
		[]string{"Ticket", "2025-05-01"},
		map[string]string{"Ticket": "", "2025-05-01": "1.25"},
	)

	got := Melt(in, "Ticket")

	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Ticket)
	assert.Equal(t, 1.25, got[0].TimeSpent)
}

func TestMeltTicketColumnPosition(t *testing.T) {
	// The ticket column is excluded from date columns wherever it appears.
	in := table(
		[]string{"2025-05-01", "Ticket", "2025-05-02"},
		map[string]string{"Ticket": "T1", "2025-05-01": "1", "2025-05-02": "2"},
	)

	got := Melt(in, "Ticket")

	want := []timesheet.Record{
		{Date: "2025-05-01", Ticket: "T1", TimeSpent: 1},
		{Date: "2025-05-02", Ticket: "T1", TimeSpent: 2},
	}
	assert.Equal(t, want, got)
}

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		in    string
		want  float64
		valid bool
	}{
		{"2", 2, true},
		{"3.5", 3.5, true},
		{" 3.5 ", 3.5, true},
		{"2h", 2, true},
		{"2.5 hours", 2.5, true},
		{"-1", -1, true},
		{"+4", 4, true},
		{".5", 0.5, true},
		{"-.5", -0.5, true},
		{"5.", 5, true},
		{"1e2", 100, true},
		{"1e2d", 100, true},
		{"2e", 2, true},      // bare exponent marker is trailing text
		{"2e+", 2, true},     // incomplete exponent is trailing text
		{"0", 0, true},
		{"0.0", 0, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"h2", 0, false},
		{".", 0, false},
		{"-", 0, false},
		{"+.", 0, false},
		{"e5", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLeadingFloat(tt.in)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
