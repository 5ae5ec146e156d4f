package service

import (
	"fmt"

	"mentorhub/core/constants"
	evententity "mentorhub/modules/event/entity"
	"mentorhub/modules/request/dto"
)

func confirmationCopy(locale string, kind evententity.MentorLinkKind, company string) dto.ConfirmationCopy {
	if locale != constants.LocaleDE {
		locale = constants.LocaleEN
	}

	if locale == constants.LocaleDE {
		c := dto.ConfirmationCopy{
			Title:        "Mentoring-Anfrage bestätigen",
			Description:  fmt.Sprintf("Sind Sie sicher, dass Sie als Mentor bei %s tätig sein möchten?", company),
			ConfirmLabel: "Anfrage bestätigen",
			CancelLabel:  "Abbrechen",
		}
		if kind == evententity.LinkKindBackup {
			c.Title = "Backup-Anfrage bestätigen"
			c.Description = fmt.Sprintf("Sind Sie sicher, dass Sie sich als Backup-Mentor für %s bewerben möchten?", company)
		}
		return c
	}

	c := dto.ConfirmationCopy{
		Title:        "Confirm Mentoring Request",
		Description:  fmt.Sprintf("Are you sure you want to request to mentor at %s?", company),
		ConfirmLabel: "Confirm Request",
		CancelLabel:  "Cancel",
	}
	if kind == evententity.LinkKindBackup {
		c.Title = "Confirm Backup Request"
		c.Description = fmt.Sprintf("Are you sure you want to request to be a backup mentor for %s?", company)
	}
	return c
}

// Localized error messages for the workflow. Missing keys fall back to the
// generic message so a partial translation never breaks the dialog.
var workflowMessages = map[string]map[string]string{
	constants.LocaleEN: {
		msgAlreadyRequested: "You have already requested this event",
		msgNotOpen:          "This event is no longer open for requests",
		msgNoBackup:         "This event is not looking for a backup mentor",
		msgTokenSpent:       "This request was already submitted",
		msgTokenExpired:     "The confirmation has expired, please try again",
		msgGeneric:          "The request could not be processed",
	},
	constants.LocaleDE: {
		msgAlreadyRequested: "Sie haben dieses Event bereits angefragt",
		msgNotOpen:          "Dieses Event nimmt keine Anfragen mehr an",
		msgNoBackup:         "Für dieses Event wird kein Backup-Mentor gesucht",
		msgTokenSpent:       "Diese Anfrage wurde bereits gesendet",
		msgTokenExpired:     "Die Bestätigung ist abgelaufen, bitte erneut versuchen",
		msgGeneric:          "Die Anfrage konnte nicht verarbeitet werden",
	},
}

const (
	msgAlreadyRequested = "already_requested"
	msgNotOpen          = "not_open"
	msgNoBackup         = "no_backup"
	msgTokenSpent       = "token_spent"
	msgTokenExpired     = "token_expired"
	msgGeneric          = "generic"
)

func localized(locale, key string) string {
	msgs, ok := workflowMessages[locale]
	if !ok {
		msgs = workflowMessages[constants.LocaleEN]
	}
	if m, ok := msgs[key]; ok {
		return m
	}
	return msgs[msgGeneric]
}
