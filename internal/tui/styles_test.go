package tui

import (
	"strings"
	"testing"

	"github.com/bcacic/joyful-playroom-manager/internal/config"
)

func TestPackageStyleKnownTiers(t *testing.T) {
	for _, pkg := range []string{"basic", "standard", "premium"} {
		t.Run(pkg, func(t *testing.T) {
			rendered := packageStyle(pkg).Render(pkg)
			if !strings.Contains(rendered, pkg) {
				t.Errorf("packageStyle(%q).Render = %q, want to contain %q", pkg, rendered, pkg)
			}
		})
	}
}

func TestPackageStyleUnknownFallback(t *testing.T) {
	rendered := packageStyle("deluxe").Render("deluxe")
	if !strings.Contains(rendered, "deluxe") {
		t.Errorf("packageStyle fallback did not render text: %q", rendered)
	}
}

func TestStatusStyleKnownStatuses(t *testing.T) {
	for _, s := range []string{"upcoming", "completed", "cancelled"} {
		rendered := statusStyle(s).Render(s)
		if !strings.Contains(rendered, s) {
			t.Errorf("statusStyle(%q).Render = %q, want to contain %q", s, rendered, s)
		}
	}
}

func TestSetThemeSwitchesPalette(t *testing.T) {
	defer setTheme(config.ThemeDark)

	setTheme(config.ThemeLight)
	if th.name != config.ThemeLight {
		t.Errorf("th.name = %q after setTheme(light), want %q", th.name, config.ThemeLight)
	}

	setTheme(config.ThemeDark)
	if th.name != config.ThemeDark {
		t.Errorf("th.name = %q after setTheme(dark), want %q", th.name, config.ThemeDark)
	}
}

func TestHelpEntryContainsKeyAndLabel(t *testing.T) {
	entry := helpEntry("d", "delete")
	if !strings.Contains(entry, "d") || !strings.Contains(entry, "delete") {
		t.Errorf("helpEntry = %q, want key and label present", entry)
	}
}
