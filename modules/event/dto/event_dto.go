package dto

import (
	"time"

	"mentorhub/modules/event/entity"

	"github.com/google/uuid"
)

// ListEventsQuery carries the directory filter and sort. Zero values mean
// "no filtering" and date-ascending order.
type ListEventsQuery struct {
	Status   string `query:"status"`
	Search   string `query:"search"`
	SortBy   string `query:"sort_by"`
	SortDesc bool   `query:"-"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

type CreateEventRequest struct {
	Title         string `json:"title"`
	Company       string `json:"company"`
	Date          string `json:"date"` // YYYY-MM-DD
	StartTime     string `json:"start_time"`
	Description   string `json:"description"`
	DisplayColumn int    `json:"display_column"`
}

// EventResponse is the directory view of an event, coach name resolved.
type EventResponse struct {
	ID            uuid.UUID   `json:"id"`
	Slug          string      `json:"slug"`
	Title         string      `json:"title"`
	Company       string      `json:"company"`
	Date          string      `json:"date"`
	StartTime     string      `json:"start_time"`
	Description   string      `json:"description,omitempty"`
	CoachID       uuid.UUID   `json:"coach_id"`
	CoachName     string      `json:"coach_name"`
	Status        string      `json:"status"`
	DisplayColumn int         `json:"display_column"`
	Mentors       MentorSets  `json:"mentors"`
	CreatedAt     time.Time   `json:"created_at"`
}

type MentorSets struct {
	RequestingMentors []uuid.UUID `json:"requesting_mentors"`
	AcceptedMentors   []uuid.UUID `json:"accepted_mentors"`
	BackupRequests    []uuid.UUID `json:"backup_requests"`
	BackupMentors     []uuid.UUID `json:"backup_mentors"`
}

func NewMentorSets(sets entity.MentorSets) MentorSets {
	return MentorSets{
		RequestingMentors: sets.RequestingMentors,
		AcceptedMentors:   sets.AcceptedMentors,
		BackupRequests:    sets.BackupRequests,
		BackupMentors:     sets.BackupMentors,
	}
}

// EventMutableResponse carries exactly the fields a client may overwrite
// after a request call: status and the mentor sets. Everything else on the
// client's copy of the event is preserved as-is (the refetch-and-merge
// contract).
type EventMutableResponse struct {
	ID      uuid.UUID  `json:"id"`
	Status  string     `json:"status"`
	Mentors MentorSets `json:"mentors"`
}

func NewEventResponse(ev *entity.Event, coachName string, sets entity.MentorSets) EventResponse {
	return EventResponse{
		ID:            ev.ID,
		Slug:          ev.Slug,
		Title:         ev.Title,
		Company:       ev.Company,
		Date:          ev.DateKey(),
		StartTime:     ev.StartTime,
		Description:   ev.Description,
		CoachID:       ev.CoachID,
		CoachName:     coachName,
		Status:        string(ev.Status),
		DisplayColumn: ev.DisplayColumn,
		Mentors:       NewMentorSets(sets),
		CreatedAt:     ev.CreatedAt,
	}
}

func NewEventMutableResponse(ev *entity.Event, sets entity.MentorSets) EventMutableResponse {
	return EventMutableResponse{
		ID:      ev.ID,
		Status:  string(ev.Status),
		Mentors: NewMentorSets(sets),
	}
}
