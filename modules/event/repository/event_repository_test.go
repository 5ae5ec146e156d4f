package repository

import "testing"

func TestSortColumn(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{"date", "e.date"},
		{"start_time", "e.start_time"},
		{"company", "e.company"},
		{"coach_name", "coach_name"},
		{"status", "e.status"},
		{"created_at", "e.created_at"},
		// Anything off the whitelist falls back to date, never into SQL.
		{"", "e.date"},
		{"id; DROP TABLE events", "e.date"},
		{"Date", "e.date"},
	}
	for _, tc := range tests {
		if got := SortColumn(tc.field); got != tc.want {
			t.Errorf("SortColumn(%q) = %q, want %q", tc.field, got, tc.want)
		}
	}
}
