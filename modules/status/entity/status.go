package entity

// EventStatus is the workflow state of a mentoring event.
type EventStatus string

const (
	StatusOpen       EventStatus = "open"       // published, no mentor activity yet
	StatusProgress   EventStatus = "progress"   // at least one primary request pending
	StatusSeekBackup EventStatus = "seekbackup" // primary settled, backups wanted
	StatusFound      EventStatus = "found"      // primary mentor accepted
	StatusClosed     EventStatus = "closed"     // event done
	StatusArchived   EventStatus = "archived"   // removed from active views
)

// legacyOld predates the archived status and still appears in old rows and
// old client payloads. It is normalized on decode and never emitted.
const legacyOld = "old"

// All lists every status in workflow order.
func All() []EventStatus {
	return []EventStatus{
		StatusOpen,
		StatusProgress,
		StatusSeekBackup,
		StatusFound,
		StatusClosed,
		StatusArchived,
	}
}

// Parse normalizes a raw status string. The second return is false for
// strings outside the enum.
func Parse(raw string) (EventStatus, bool) {
	if raw == legacyOld {
		return StatusArchived, true
	}
	s := EventStatus(raw)
	switch s {
	case StatusOpen, StatusProgress, StatusSeekBackup, StatusFound, StatusClosed, StatusArchived:
		return s, true
	}
	return s, false
}

func (s EventStatus) Valid() bool {
	_, ok := Parse(string(s))
	return ok
}

func (s EventStatus) String() string {
	return string(s)
}
