package entity

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want EventStatus
		ok   bool
	}{
		{"open", StatusOpen, true},
		{"progress", StatusProgress, true},
		{"seekbackup", StatusSeekBackup, true},
		{"found", StatusFound, true},
		{"closed", StatusClosed, true},
		{"archived", StatusArchived, true},
		// legacy synonym is normalized, never kept
		{"old", StatusArchived, true},
		{"", "", false},
		{"OPEN", "OPEN", false},
		{"deleted", "deleted", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Parse(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAll_WorkflowOrder(t *testing.T) {
	want := []EventStatus{StatusOpen, StatusProgress, StatusSeekBackup, StatusFound, StatusClosed, StatusArchived}
	got := All()
	if len(got) != len(want) {
		t.Fatalf("All() returned %d statuses, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValid(t *testing.T) {
	for _, st := range All() {
		if !st.Valid() {
			t.Errorf("%q should be valid", st)
		}
	}
	if EventStatus("old").Valid() != true {
		t.Error("legacy old should still decode as valid")
	}
	if EventStatus("bogus").Valid() {
		t.Error("bogus should not be valid")
	}
}
