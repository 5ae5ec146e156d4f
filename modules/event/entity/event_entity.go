package entity

import (
	"time"

	"mentorhub/core/entity"
	statusentity "mentorhub/modules/status/entity"

	"github.com/google/uuid"
)

// Event is a mentoring event published by a coach. Date is the calendar day
// (DATE column); StartTime is the wall-clock "HH:MM" string shown to users,
// kept textual because the source systems never carried a timezone with it.
type Event struct {
	Slug          string                   `db:"slug" json:"slug"`
	Title         string                   `db:"title" json:"title"`
	Company       string                   `db:"company" json:"company"`
	Date          time.Time                `db:"date" json:"date"`
	StartTime     string                   `db:"start_time" json:"start_time"`
	Description   string                   `db:"description" json:"description"`
	CoachID       uuid.UUID                `db:"coach_id" json:"coach_id"`
	Status        statusentity.EventStatus `db:"status" json:"status"`
	DisplayColumn int                      `db:"display_column" json:"display_column"`
	entity.BaseEntity
}

// DateKey returns the canonical YYYY-MM-DD key for calendar grouping.
func (e *Event) DateKey() string {
	return e.Date.Format("2006-01-02")
}

// MentorLinkKind distinguishes primary mentoring from backup.
type MentorLinkKind string

const (
	LinkKindPrimary MentorLinkKind = "primary"
	LinkKindBackup  MentorLinkKind = "backup"
)

// MentorLinkState tracks whether a mentor has only asked or has been
// accepted by the coach.
type MentorLinkState string

const (
	LinkStateRequested MentorLinkState = "requested"
	LinkStateAccepted  MentorLinkState = "accepted"
)

// MentorLink is one mentor's relationship to one event. The four mentor
// sets on an event (requesting, accepted, backup requests, backups) are
// projections of these rows by kind and state.
type MentorLink struct {
	EventID   uuid.UUID       `db:"event_id" json:"event_id"`
	MentorID  uuid.UUID       `db:"mentor_id" json:"mentor_id"`
	Kind      MentorLinkKind  `db:"kind" json:"kind"`
	State     MentorLinkState `db:"state" json:"state"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// MentorSets is the grouped view of an event's mentor links.
type MentorSets struct {
	RequestingMentors []uuid.UUID `json:"requesting_mentors"`
	AcceptedMentors   []uuid.UUID `json:"accepted_mentors"`
	BackupRequests    []uuid.UUID `json:"backup_requests"`
	BackupMentors     []uuid.UUID `json:"backup_mentors"`
}

// GroupLinks projects mentor links into the four sets. Slices are always
// non-nil so JSON renders empty arrays rather than null.
func GroupLinks(links []MentorLink) MentorSets {
	sets := MentorSets{
		RequestingMentors: []uuid.UUID{},
		AcceptedMentors:   []uuid.UUID{},
		BackupRequests:    []uuid.UUID{},
		BackupMentors:     []uuid.UUID{},
	}
	for _, l := range links {
		switch {
		case l.Kind == LinkKindPrimary && l.State == LinkStateRequested:
			sets.RequestingMentors = append(sets.RequestingMentors, l.MentorID)
		case l.Kind == LinkKindPrimary && l.State == LinkStateAccepted:
			sets.AcceptedMentors = append(sets.AcceptedMentors, l.MentorID)
		case l.Kind == LinkKindBackup && l.State == LinkStateRequested:
			sets.BackupRequests = append(sets.BackupRequests, l.MentorID)
		case l.Kind == LinkKindBackup && l.State == LinkStateAccepted:
			sets.BackupMentors = append(sets.BackupMentors, l.MentorID)
		}
	}
	return sets
}

// Has reports whether the mentor already holds a link of the given kind in
// any state.
func Has(links []MentorLink, mentorID uuid.UUID, kind MentorLinkKind) bool {
	for _, l := range links {
		if l.MentorID == mentorID && l.Kind == kind {
			return true
		}
	}
	return false
}
