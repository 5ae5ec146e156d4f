package service

import (
	"testing"

	"mentorhub/core/constants"
	"mentorhub/modules/status/entity"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		name   string
		status entity.EventStatus
		locale string
		want   string
	}{
		{"open en", entity.StatusOpen, "en", "Mentors wanted"},
		{"open de", entity.StatusOpen, "de", "Mentoren gesucht"},
		{"seekbackup en", entity.StatusSeekBackup, "en", "Backup wanted"},
		{"seekbackup de", entity.StatusSeekBackup, "de", "Backup gesucht"},
		{"closed de", entity.StatusClosed, "de", "Abgeschlossen"},
		{"unknown locale falls back to en", entity.StatusFound, "fr", "Mentors found"},
		{"unknown status passes through", entity.EventStatus("mystery"), "en", "mystery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.status, tt.locale); got != tt.want {
				t.Errorf("Label(%q, %q) = %q, want %q", tt.status, tt.locale, got, tt.want)
			}
		})
	}
}

func TestLabel_TotalOverEnum(t *testing.T) {
	for _, locale := range []string{constants.LocaleEN, constants.LocaleDE} {
		for _, st := range entity.All() {
			label := Label(st, locale)
			if label == "" || label == string(st) {
				t.Errorf("Label(%q, %q) = %q, want a translated label", st, locale, label)
			}
		}
	}
}

func TestStyle_DistinctPerTheme(t *testing.T) {
	for _, theme := range []string{constants.ThemeLight, constants.ThemeDark} {
		seen := make(map[string]entity.EventStatus)
		for _, st := range entity.All() {
			style := Style(st, theme)
			if style.Background == "" || style.Foreground == "" {
				t.Errorf("Style(%q, %q) has empty colors", st, theme)
			}
			if prev, dup := seen[style.Background]; dup {
				t.Errorf("theme %q: %q and %q share background %q", theme, prev, st, style.Background)
			}
			seen[style.Background] = st
		}
	}
}

func TestStyle_Fallbacks(t *testing.T) {
	unknown := entity.EventStatus("mystery")
	if got := Style(unknown, constants.ThemeLight); got != fallbackStyle[constants.ThemeLight] {
		t.Errorf("unknown status should use the fallback style, got %+v", got)
	}
	// Unknown theme falls back to light.
	if got := Style(entity.StatusOpen, "sepia"); got != styles[constants.ThemeLight][entity.StatusOpen] {
		t.Errorf("unknown theme should fall back to light, got %+v", got)
	}
}

func TestLegend(t *testing.T) {
	legend := Legend(constants.LocaleDE, constants.ThemeDark)
	if len(legend) != len(entity.All()) {
		t.Fatalf("Legend returned %d entries, want %d", len(legend), len(entity.All()))
	}
	if legend[0].Status != entity.StatusOpen || legend[0].Label != "Mentoren gesucht" {
		t.Errorf("first legend entry = %+v, want open / Mentoren gesucht", legend[0])
	}
	for _, e := range legend {
		if e.Label == "" {
			t.Errorf("legend entry %q has empty label", e.Status)
		}
	}
}
