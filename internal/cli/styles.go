package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zeon-dev/zeon/internal/compose"
)

// titleCaser renders enum values as human-readable names.
var titleCaser = cases.Title(language.English)

// displayName turns a lowercase enum value into a display label, e.g.
// "rate_limiting" becomes "Rate Limiting".
func displayName(v string) string {
	return titleCaser.String(strings.ReplaceAll(v, "_", " "))
}

// featureList renders a feature set for display, or "None".
func featureList(features []compose.FeatureKind) string {
	if len(features) == 0 {
		return "None"
	}
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = displayName(string(f))
	}
	return strings.Join(names, ", ")
}

// styles holds the lipgloss styles shared by command output.
type styles struct {
	banner  lipgloss.Style
	card    lipgloss.Style
	label   lipgloss.Style
	success lipgloss.Style
	errText lipgloss.Style
}

// newStyles builds the command output styles from the active theme.
func newStyles() *styles {
	s := &styles{
		banner:  lipgloss.NewStyle().Bold(true),
		card:    lipgloss.NewStyle().Padding(0, 1),
		label:   lipgloss.NewStyle(),
		success: lipgloss.NewStyle(),
		errText: lipgloss.NewStyle(),
	}
	if deps == nil || deps.Theme.NoColor {
		return s
	}

	colors := deps.Theme.Colors
	s.banner = s.banner.Foreground(lipgloss.Color(colors.Primary))
	s.card = s.card.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Muted))
	s.label = s.label.Foreground(lipgloss.Color(colors.Secondary))
	s.success = s.success.Foreground(lipgloss.Color(colors.Success))
	s.errText = s.errText.Foreground(lipgloss.Color(colors.Error))
	return s
}

// renderConfigCard renders the resolved configuration summary.
func renderConfigCard(cfg compose.ProjectConfig) string {
	s := newStyles()

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.label.Render("Project:"), cfg.Name)
	fmt.Fprintf(&b, "%s %s\n", s.label.Render("Database:"), displayName(string(cfg.Database)))
	fmt.Fprintf(&b, "%s %s\n", s.label.Render("Authentication:"), displayName(string(cfg.Auth)))
	fmt.Fprintf(&b, "%s %s", s.label.Render("Features:"), featureList(cfg.Features))

	return s.card.Render(b.String())
}
