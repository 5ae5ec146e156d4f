package service

import (
	authentity "mentorhub/modules/auth/entity"
	evententity "mentorhub/modules/event/entity"
	"mentorhub/modules/request/dto"
	statusentity "mentorhub/modules/status/entity"

	"github.com/google/uuid"
)

// CanRequestPrimary reports whether the event status still admits new
// primary mentoring requests.
func CanRequestPrimary(status statusentity.EventStatus) bool {
	switch status {
	case statusentity.StatusOpen, statusentity.StatusProgress, statusentity.StatusSeekBackup:
		return true
	}
	return false
}

// CanRequestBackup reports whether backup requests are open. Backups are
// only sought while the event is explicitly in seekbackup.
func CanRequestBackup(status statusentity.EventStatus) bool {
	return status == statusentity.StatusSeekBackup
}

// CapabilitiesFor is the full role/status gate for one user on one event.
func CapabilitiesFor(role authentity.Role, userID uuid.UUID, ev *evententity.Event, links []evententity.MentorLink) dto.Capabilities {
	caps := dto.Capabilities{
		CanViewMentors: role == authentity.RoleMentor || role == authentity.RoleCoach,
		CanManage:      role == authentity.RoleCoach && ev.CoachID == userID,
	}
	if role != authentity.RoleMentor {
		return caps
	}

	alreadyPrimary := false
	alreadyBackup := false
	for _, l := range links {
		if l.MentorID != userID {
			continue
		}
		switch l.Kind {
		case evententity.LinkKindPrimary:
			alreadyPrimary = true
		case evententity.LinkKindBackup:
			alreadyBackup = true
		}
	}

	caps.CanRequestPrimary = CanRequestPrimary(ev.Status) && !alreadyPrimary
	caps.CanRequestBackup = CanRequestBackup(ev.Status) && !alreadyBackup && !alreadyPrimary
	return caps
}
