package service

import (
	"testing"

	authentity "mentorhub/modules/auth/entity"
	evententity "mentorhub/modules/event/entity"
	statusentity "mentorhub/modules/status/entity"

	"github.com/google/uuid"
)

func TestCanRequestPrimary(t *testing.T) {
	tests := []struct {
		status statusentity.EventStatus
		want   bool
	}{
		{statusentity.StatusOpen, true},
		{statusentity.StatusProgress, true},
		{statusentity.StatusSeekBackup, true},
		{statusentity.StatusFound, false},
		{statusentity.StatusClosed, false},
		{statusentity.StatusArchived, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := CanRequestPrimary(tt.status); got != tt.want {
				t.Errorf("CanRequestPrimary(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestCanRequestBackup(t *testing.T) {
	for _, st := range statusentity.All() {
		want := st == statusentity.StatusSeekBackup
		if got := CanRequestBackup(st); got != want {
			t.Errorf("CanRequestBackup(%q) = %v, want %v", st, got, want)
		}
	}
}

func TestCapabilitiesFor(t *testing.T) {
	coachID := uuid.New()
	mentorID := uuid.New()

	ev := func(status statusentity.EventStatus) *evententity.Event {
		e := &evententity.Event{Status: status}
		e.CoachID = coachID
		return e
	}
	link := func(kind evententity.MentorLinkKind) evententity.MentorLink {
		return evententity.MentorLink{MentorID: mentorID, Kind: kind, State: evententity.LinkStateRequested}
	}

	tests := []struct {
		name        string
		role        authentity.Role
		userID      uuid.UUID
		status      statusentity.EventStatus
		links       []evententity.MentorLink
		wantPrimary bool
		wantBackup  bool
		wantView    bool
		wantManage  bool
	}{
		{
			name: "guest sees nothing", role: authentity.RoleGuest, userID: mentorID,
			status: statusentity.StatusOpen,
		},
		{
			name: "mentor on open event", role: authentity.RoleMentor, userID: mentorID,
			status: statusentity.StatusOpen, wantPrimary: true, wantView: true,
		},
		{
			name: "mentor on seekbackup may do both", role: authentity.RoleMentor, userID: mentorID,
			status: statusentity.StatusSeekBackup, wantPrimary: true, wantBackup: true, wantView: true,
		},
		{
			name: "mentor already requested primary", role: authentity.RoleMentor, userID: mentorID,
			status: statusentity.StatusSeekBackup, links: []evententity.MentorLink{link(evententity.LinkKindPrimary)},
			wantView: true,
		},
		{
			name: "mentor already requested backup", role: authentity.RoleMentor, userID: mentorID,
			status: statusentity.StatusSeekBackup, links: []evententity.MentorLink{link(evententity.LinkKindBackup)},
			wantPrimary: true, wantView: true,
		},
		{
			name: "another mentor's links do not block", role: authentity.RoleMentor, userID: uuid.New(),
			status: statusentity.StatusOpen, links: []evententity.MentorLink{link(evententity.LinkKindPrimary)},
			wantPrimary: true, wantView: true,
		},
		{
			name: "mentor on closed event", role: authentity.RoleMentor, userID: mentorID,
			status: statusentity.StatusClosed, wantView: true,
		},
		{
			name: "owning coach manages but never requests", role: authentity.RoleCoach, userID: coachID,
			status: statusentity.StatusOpen, wantView: true, wantManage: true,
		},
		{
			name: "other coach does not manage", role: authentity.RoleCoach, userID: uuid.New(),
			status: statusentity.StatusOpen, wantView: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := CapabilitiesFor(tt.role, tt.userID, ev(tt.status), tt.links)
			if caps.CanRequestPrimary != tt.wantPrimary {
				t.Errorf("CanRequestPrimary = %v, want %v", caps.CanRequestPrimary, tt.wantPrimary)
			}
			if caps.CanRequestBackup != tt.wantBackup {
				t.Errorf("CanRequestBackup = %v, want %v", caps.CanRequestBackup, tt.wantBackup)
			}
			if caps.CanViewMentors != tt.wantView {
				t.Errorf("CanViewMentors = %v, want %v", caps.CanViewMentors, tt.wantView)
			}
			if caps.CanManage != tt.wantManage {
				t.Errorf("CanManage = %v, want %v", caps.CanManage, tt.wantManage)
			}
		})
	}
}
