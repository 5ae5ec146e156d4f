package service

import (
	"testing"
	"time"

	evententity "mentorhub/modules/event/entity"
	statusentity "mentorhub/modules/status/entity"
)

func eventAt(company string, date time.Time, status statusentity.EventStatus) evententity.Event {
	return evententity.Event{Company: company, Date: date, Status: status}
}

func TestCanonicalDay(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"2026-09-14", "2026-09-14", true},
		{"2026-09-14T18:30:00Z", "2026-09-14", true},
		{"2026-09-14T23:45:00+02:00", "2026-09-14", true},
		{"2026-9-14", "", false},
		{"14.09.2026", "", false},
		{"", "", false},
	}
	for _, tc := range tests {
		got, ok := CanonicalDay(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Errorf("CanonicalDay(%q) = %q, %v, want %q, %v", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseDaySelection(t *testing.T) {
	west := time.FixedZone("viewer", -5*60*60)

	t.Run("plain date is midnight in the viewer zone", func(t *testing.T) {
		got, ok := ParseDaySelection("2026-09-14", west)
		if !ok {
			t.Fatal("ParseDaySelection rejected a plain date")
		}
		want := time.Date(2026, 9, 14, 0, 0, 0, 0, west)
		if !got.Equal(want) {
			t.Errorf("ParseDaySelection = %v, want %v", got, want)
		}
	})

	t.Run("timestamp keeps its instant", func(t *testing.T) {
		got, ok := ParseDaySelection("2026-09-14T23:30:00Z", west)
		if !ok {
			t.Fatal("ParseDaySelection rejected a timestamp")
		}
		want := time.Date(2026, 9, 14, 23, 30, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("ParseDaySelection = %v, want %v", got, want)
		}
	})

	t.Run("nil zone defaults to utc", func(t *testing.T) {
		got, ok := ParseDaySelection("2026-09-14", nil)
		if !ok {
			t.Fatal("ParseDaySelection rejected a plain date")
		}
		want := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("ParseDaySelection = %v, want %v", got, want)
		}
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		if _, ok := ParseDaySelection("14.09.2026", west); ok {
			t.Error("ParseDaySelection accepted a malformed date")
		}
	})
}

func TestGroupByDate(t *testing.T) {
	day1 := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	events := []evententity.Event{
		eventAt("Acme GmbH", day1, statusentity.StatusOpen),
		eventAt("Globex AG", day1, statusentity.StatusFound),
		eventAt("Initech", day2, statusentity.StatusClosed),
	}

	grouped := GroupByDate(events)
	if len(grouped) != 2 {
		t.Fatalf("GroupByDate produced %d buckets, want 2", len(grouped))
	}
	if len(grouped["2026-09-14"]) != 2 {
		t.Errorf("2026-09-14 has %d events, want 2", len(grouped["2026-09-14"]))
	}
	if len(grouped["2026-09-15"]) != 1 {
		t.Errorf("2026-09-15 has %d events, want 1", len(grouped["2026-09-15"]))
	}

	// Regrouping a bucket yields the same bucket back.
	again := GroupByDate(grouped["2026-09-14"])
	if len(again) != 1 || len(again["2026-09-14"]) != 2 {
		t.Errorf("regrouping changed buckets: %v", again)
	}
}

func TestEventsOnDate_EmptyIsNeverNil(t *testing.T) {
	got := EventsOnDate(nil, "2026-09-14")
	if got == nil {
		t.Fatal("EventsOnDate returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("EventsOnDate on no events = %d matches", len(got))
	}
}

func TestEventsMatchingCalendarDay(t *testing.T) {
	// Event dates are calendar days; the DATE column scans as midnight UTC.
	day14 := eventAt("Acme GmbH", time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), statusentity.StatusOpen)
	day15 := eventAt("Globex AG", time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), statusentity.StatusOpen)
	events := []evententity.Event{day14, day15}

	west := time.FixedZone("viewer", -5*60*60)
	east := time.FixedZone("viewer", 2*60*60)

	tests := []struct {
		name     string
		zone     *time.Location
		selected time.Time
		want     []string
	}{
		{
			name:     "utc viewer at midnight",
			zone:     time.UTC,
			selected: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			want:     []string{"Acme GmbH"},
		},
		{
			// The event's midnight-UTC date must not drift to the previous
			// day for a viewer west of UTC.
			name:     "west viewer sees the selected day's events",
			zone:     west,
			selected: time.Date(2026, 9, 14, 0, 0, 0, 0, west),
			want:     []string{"Acme GmbH"},
		},
		{
			name:     "late-evening selection stays on the viewer's day",
			zone:     west,
			selected: time.Date(2026, 9, 14, 23, 0, 0, 0, west),
			want:     []string{"Acme GmbH"},
		},
		{
			name:     "just-after-midnight selection stays on the viewer's day",
			zone:     time.UTC,
			selected: time.Date(2026, 9, 14, 0, 30, 0, 0, time.UTC),
			want:     []string{"Acme GmbH"},
		},
		{
			// 23:30 UTC is already the 15th for a UTC+2 viewer, so the
			// viewer's day is the 15th.
			name:     "east viewer crosses midnight into the next day",
			zone:     east,
			selected: time.Date(2026, 9, 14, 23, 30, 0, 0, time.UTC),
			want:     []string{"Globex AG"},
		},
		{
			name:     "nil zone defaults to utc",
			zone:     nil,
			selected: time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC),
			want:     []string{"Globex AG"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EventsMatchingCalendarDay(events, tc.selected, tc.zone)
			if len(got) != len(tc.want) {
				t.Fatalf("matched %d events, want %d", len(got), len(tc.want))
			}
			for i, ev := range got {
				if ev.Company != tc.want[i] {
					t.Errorf("match[%d] = %q, want %q", i, ev.Company, tc.want[i])
				}
			}
		})
	}
}

func TestStatusCountsForDate(t *testing.T) {
	day := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	other := time.Date(2026, 9, 15, 9, 0, 0, 0, time.UTC)
	events := []evententity.Event{
		eventAt("Acme GmbH", day, statusentity.StatusOpen),
		eventAt("Globex AG", day, statusentity.StatusOpen),
		eventAt("Initech", day, statusentity.StatusFound),
		eventAt("Umbrella", other, statusentity.StatusClosed),
	}

	counts := StatusCountsForDate(events, "2026-09-14")
	if len(counts) != len(statusentity.All()) {
		t.Fatalf("counts has %d keys, want one per status (%d)", len(counts), len(statusentity.All()))
	}
	if counts[string(statusentity.StatusOpen)] != 2 {
		t.Errorf("open = %d, want 2", counts[string(statusentity.StatusOpen)])
	}
	if counts[string(statusentity.StatusFound)] != 1 {
		t.Errorf("found = %d, want 1", counts[string(statusentity.StatusFound)])
	}
	// Other day's event counts nowhere; absent statuses are zero-filled.
	if counts[string(statusentity.StatusClosed)] != 0 {
		t.Errorf("closed = %d, want 0", counts[string(statusentity.StatusClosed)])
	}
	if counts[string(statusentity.StatusArchived)] != 0 {
		t.Errorf("archived = %d, want 0", counts[string(statusentity.StatusArchived)])
	}
}
