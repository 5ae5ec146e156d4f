package worker

import (
	"strings"
	"testing"

	evententity "mentorhub/modules/event/entity"
	notifentity "mentorhub/modules/notification/entity"
)

func TestDeliverContent(t *testing.T) {
	tests := []struct {
		name        string
		kind        evententity.MentorLinkKind
		company     string
		wantType    string
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "primary request names the company",
			kind:        evententity.LinkKindPrimary,
			company:     "Acme GmbH",
			wantType:    notifentity.TypeMentorRequest,
			wantTitle:   "New mentoring request",
			wantMessage: "A mentor has requested to join your event at Acme GmbH",
		},
		{
			name:        "backup request names the company",
			kind:        evententity.LinkKindBackup,
			company:     "Acme GmbH",
			wantType:    notifentity.TypeBackupRequest,
			wantTitle:   "New backup request",
			wantMessage: "A mentor has offered to be backup for your event at Acme GmbH",
		},
		{
			// The event can be gone by delivery time; the message must not
			// trail off into a dangling "at ".
			name:        "missing event drops the company clause",
			kind:        evententity.LinkKindPrimary,
			company:     "",
			wantType:    notifentity.TypeMentorRequest,
			wantTitle:   "New mentoring request",
			wantMessage: "A mentor has requested to join your event",
		},
		{
			name:        "missing event drops the company clause for backup",
			kind:        evententity.LinkKindBackup,
			company:     "",
			wantType:    notifentity.TypeBackupRequest,
			wantTitle:   "New backup request",
			wantMessage: "A mentor has offered to be backup for your event",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			notifType, title, message := deliverContent(tc.kind, tc.company)
			if notifType != tc.wantType {
				t.Errorf("type = %q, want %q", notifType, tc.wantType)
			}
			if title != tc.wantTitle {
				t.Errorf("title = %q, want %q", title, tc.wantTitle)
			}
			if message != tc.wantMessage {
				t.Errorf("message = %q, want %q", message, tc.wantMessage)
			}
			if strings.HasSuffix(message, "at ") {
				t.Errorf("message %q ends with a dangling company clause", message)
			}
		})
	}
}
