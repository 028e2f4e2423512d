package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpEntry is one row in the help overlay.
type helpEntry struct {
	key  string
	desc string
}

var helpSections = []struct {
	title   string
	entries []helpEntry
}{
	{
		title: "Searching",
		entries: []helpEntry{
			{"/", "focus the search box"},
			{"enter", "run the search"},
			{"esc", "leave the search box"},
		},
	},
	{
		title: "Navigation",
		entries: []helpEntry{
			{"tab / shift+tab", "cycle panes"},
			{"j/k or ↑/↓", "move within a pane"},
			{"n / p", "next / previous page"},
			{"g / G", "first / last result"},
		},
	},
	{
		title: "Filters",
		entries: []helpEntry{
			{"space", "toggle the highlighted facet value"},
			{"x", "clear the highlighted facet"},
			{"X", "clear every filter"},
		},
	},
	{
		title: "Other",
		entries: []helpEntry{
			{"r", "recent queries"},
			{"t", "cycle theme"},
			{"?", "toggle this help"},
			{"q", "quit"},
		},
	},
}

// renderHelp draws the full-screen help overlay.
func (m Model) renderHelp() string {
	keyStyle := m.styles.AccentText.Width(18)

	var b strings.Builder
	b.WriteString(m.styles.Logo.Render("winnow"))
	b.WriteString(m.styles.MutedText.Render("  ·  key bindings"))
	b.WriteString("\n")

	for _, section := range helpSections {
		b.WriteString("\n")
		b.WriteString(m.styles.WarningText.Render(section.title))
		b.WriteString("\n")
		for _, e := range section.entries {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(e.key))
			b.WriteString(m.styles.Text.Render(e.desc))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render("press any key to close"))

	box := m.styles.PaneFocused.Padding(1, 3).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
