package dto

import (
	eventdto "mentorhub/modules/event/dto"
)

// DaySummary is one calendar cell: a date with its zero-filled status
// counts. Counts always contain every status so clients can render the
// legend without checking for missing keys.
type DaySummary struct {
	Date       string         `json:"date"` // YYYY-MM-DD
	EventCount int            `json:"event_count"`
	Counts     map[string]int `json:"counts"`
}

type MonthResponse struct {
	Month string       `json:"month"` // YYYY-MM
	Days  []DaySummary `json:"days"`
}

// DayResponse lists the full events of one calendar day in the viewer's
// zone. Events is never nil.
type DayResponse struct {
	Date   string                   `json:"date"`
	Events []eventdto.EventResponse `json:"events"`
	Counts map[string]int           `json:"counts"`
}
