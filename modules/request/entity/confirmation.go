package entity

import (
	"encoding/json"

	evententity "mentorhub/modules/event/entity"

	"github.com/google/uuid"
)

// Confirmation is the pending half of a two-phase mentor request. It lives
// in redis under its token for a short TTL; consuming it is the only way to
// submit the request, so a token can be spent exactly once.
type Confirmation struct {
	Token    string                     `json:"token"`
	EventID  uuid.UUID                  `json:"event_id"`
	MentorID uuid.UUID                  `json:"mentor_id"`
	Kind     evententity.MentorLinkKind `json:"kind"`
	Locale   string                     `json:"locale"`
}

func (c *Confirmation) Encode() (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func DecodeConfirmation(payload string) (*Confirmation, error) {
	var c Confirmation
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return nil, err
	}
	return &c, nil
}
