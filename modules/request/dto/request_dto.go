package dto

import (
	"github.com/google/uuid"
)

// PrepareConfirmationRequest asks for a one-shot confirmation before a
// mentor request is submitted.
type PrepareConfirmationRequest struct {
	Kind   string `json:"kind"`   // primary or backup
	Locale string `json:"locale"` // en or de
}

// ConfirmationCopy is the localized text shown before a mentor commits to
// a request.
type ConfirmationCopy struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ConfirmLabel string `json:"confirm_label"`
	CancelLabel  string `json:"cancel_label"`
}

// ConfirmationResponse carries the token the client must echo on submit
// plus the localized dialog copy.
type ConfirmationResponse struct {
	Token            string           `json:"token"`
	ExpiresInSeconds int              `json:"expires_in_seconds"`
	EventID          uuid.UUID        `json:"event_id"`
	Company          string           `json:"company"`
	Date             string           `json:"date"`
	StartTime        string           `json:"start_time"`
	Kind             string           `json:"kind"`
	Copy             ConfirmationCopy `json:"copy"`
}

// SubmitRequest consumes a confirmation token.
type SubmitRequest struct {
	Token  string `json:"token"`
	Locale string `json:"locale"`
}

// CoachTransitionRequest is used for accept; the mentor being accepted is
// part of the body.
type CoachTransitionRequest struct {
	MentorID uuid.UUID `json:"mentor_id"`
}

// Capabilities reports what one user may do on one event. Every gate the
// handlers enforce is derived from the same computation so client and
// server cannot disagree on what a button may do.
type Capabilities struct {
	CanRequestPrimary bool `json:"can_request_primary"`
	CanRequestBackup  bool `json:"can_request_backup"`
	CanViewMentors    bool `json:"can_view_mentors"`
	CanManage         bool `json:"can_manage"`
}

type CapabilitiesResponse struct {
	EventID      uuid.UUID    `json:"event_id"`
	Capabilities Capabilities `json:"capabilities"`
}
