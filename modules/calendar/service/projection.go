package service

import (
	"time"

	evententity "mentorhub/modules/event/entity"
	statusentity "mentorhub/modules/status/entity"
)

const dayFormat = "2006-01-02"

// ParseDaySelection parses a day selection: a plain date is taken as that
// calendar day in zone, an RFC3339 timestamp as the instant it names.
// A nil zone means UTC.
func ParseDaySelection(raw string, zone *time.Location) (time.Time, bool) {
	if zone == nil {
		zone = time.UTC
	}
	if t, err := time.ParseInLocation(dayFormat, raw, zone); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CanonicalDay normalizes a date representation to YYYY-MM-DD. It accepts
// a plain date or an RFC3339 timestamp; the timestamp's own calendar day
// is used as-is, no zone conversion.
func CanonicalDay(raw string) (string, bool) {
	t, ok := ParseDaySelection(raw, time.UTC)
	if !ok {
		return "", false
	}
	return t.Format(dayFormat), true
}

// GroupByDate buckets events under their canonical day key. Grouping an
// already-grouped day back in yields the same buckets.
func GroupByDate(events []evententity.Event) map[string][]evententity.Event {
	grouped := make(map[string][]evententity.Event)
	for _, ev := range events {
		key := ev.DateKey()
		grouped[key] = append(grouped[key], ev)
	}
	return grouped
}

// EventsOnDate returns the events whose canonical day equals day. The
// result is an empty slice, never nil.
func EventsOnDate(events []evententity.Event, day string) []evententity.Event {
	matched := make([]evententity.Event, 0)
	for _, ev := range events {
		if ev.DateKey() == day {
			matched = append(matched, ev)
		}
	}
	return matched
}

// EventsMatchingCalendarDay selects events dated on the calendar day the
// viewer sees for selected. An event's date is a calendar identity, not an
// instant, so only the selected instant is shifted into the viewer's zone;
// a near-midnight selection on either side of UTC still lands on the day
// the viewer picked.
func EventsMatchingCalendarDay(events []evententity.Event, selected time.Time, zone *time.Location) []evententity.Event {
	if zone == nil {
		zone = time.UTC
	}
	want := selected.In(zone).Format(dayFormat)

	matched := make([]evententity.Event, 0)
	for _, ev := range events {
		if ev.DateKey() == want {
			matched = append(matched, ev)
		}
	}
	return matched
}

// StatusCountsForDate counts the day's events per status, zero-filled
// across the whole enum.
func StatusCountsForDate(events []evententity.Event, day string) map[string]int {
	counts := make(map[string]int, len(statusentity.All()))
	for _, st := range statusentity.All() {
		counts[string(st)] = 0
	}
	for _, ev := range EventsOnDate(events, day) {
		counts[string(ev.Status)]++
	}
	return counts
}
