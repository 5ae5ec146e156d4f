package service

import (
	"mentorhub/core/constants"
	"mentorhub/modules/status/entity"
)

// BadgeStyle describes how a status badge renders in one theme.
type BadgeStyle struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// labels is total over the enum for every supported locale. Label falls
// back to the raw status string for anything outside the enum, so a stale
// client can still render.
var labels = map[string]map[entity.EventStatus]string{
	constants.LocaleEN: {
		entity.StatusOpen:       "Mentors wanted",
		entity.StatusProgress:   "In process",
		entity.StatusSeekBackup: "Backup wanted",
		entity.StatusFound:      "Mentors found",
		entity.StatusClosed:     "Closed",
		entity.StatusArchived:   "Archived",
	},
	constants.LocaleDE: {
		entity.StatusOpen:       "Mentoren gesucht",
		entity.StatusProgress:   "In Bearbeitung",
		entity.StatusSeekBackup: "Backup gesucht",
		entity.StatusFound:      "Mentoren gefunden",
		entity.StatusClosed:     "Abgeschlossen",
		entity.StatusArchived:   "Archiviert",
	},
}

var styles = map[string]map[entity.EventStatus]BadgeStyle{
	constants.ThemeLight: {
		entity.StatusOpen:       {Background: "#2563eb", Foreground: "#ffffff"},
		entity.StatusProgress:   {Background: "#d97706", Foreground: "#ffffff"},
		entity.StatusSeekBackup: {Background: "#7c3aed", Foreground: "#ffffff"},
		entity.StatusFound:      {Background: "#16a34a", Foreground: "#ffffff"},
		entity.StatusClosed:     {Background: "#475569", Foreground: "#ffffff"},
		entity.StatusArchived:   {Background: "#e2e8f0", Foreground: "#334155"},
	},
	constants.ThemeDark: {
		entity.StatusOpen:       {Background: "#3b82f6", Foreground: "#0b1120"},
		entity.StatusProgress:   {Background: "#f59e0b", Foreground: "#0b1120"},
		entity.StatusSeekBackup: {Background: "#a78bfa", Foreground: "#0b1120"},
		entity.StatusFound:      {Background: "#4ade80", Foreground: "#0b1120"},
		entity.StatusClosed:     {Background: "#94a3b8", Foreground: "#0b1120"},
		entity.StatusArchived:   {Background: "#1e293b", Foreground: "#94a3b8"},
	},
}

// fallbackStyle is the neutral badge for anything outside the enum.
var fallbackStyle = map[string]BadgeStyle{
	constants.ThemeLight: {Background: "#f1f5f9", Foreground: "#0f172a"},
	constants.ThemeDark:  {Background: "#334155", Foreground: "#e2e8f0"},
}

// Label returns the display text for a status. Unknown statuses come back
// unchanged; unknown locales fall back to English.
func Label(status entity.EventStatus, locale string) string {
	table, ok := labels[locale]
	if !ok {
		table = labels[constants.LocaleEN]
	}
	if label, ok := table[status]; ok {
		return label
	}
	return string(status)
}

// Style returns the badge treatment for a status in the given theme.
// Unknown themes fall back to light.
func Style(status entity.EventStatus, theme string) BadgeStyle {
	table, ok := styles[theme]
	if !ok {
		theme = constants.ThemeLight
		table = styles[theme]
	}
	if style, ok := table[status]; ok {
		return style
	}
	return fallbackStyle[theme]
}

// LegendEntry pairs a status with its presentation for one locale/theme.
type LegendEntry struct {
	Status entity.EventStatus `json:"status"`
	Label  string             `json:"label"`
	Style  BadgeStyle         `json:"style"`
}

// Legend returns every status with its label and style, in workflow order.
func Legend(locale, theme string) []LegendEntry {
	all := entity.All()
	legend := make([]LegendEntry, 0, len(all))
	for _, s := range all {
		legend = append(legend, LegendEntry{
			Status: s,
			Label:  Label(s, locale),
			Style:  Style(s, theme),
		})
	}
	return legend
}
