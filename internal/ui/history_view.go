package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/ahouk/winnow/internal/history"
)

const historyOverlayLimit = 15

// historyMsg carries recent queries loaded off the UI goroutine.
type historyMsg struct {
	entries []history.Entry
}

// openHistory shows the recent-queries overlay and loads its entries.
func (m Model) openHistory() (tea.Model, tea.Cmd) {
	if m.history == nil {
		return m, nil
	}
	m.showHistory = true
	m.historyEntries = nil
	m.historyIdx = 0

	store := m.history
	logger := m.logger
	return m, func() tea.Msg {
		entries, err := store.Recent(historyOverlayLimit)
		if err != nil {
			logger.Warn("load recent queries", zap.Error(err))
			return historyMsg{}
		}
		return historyMsg{entries: entries}
	}
}

// handleHistoryKey routes keys while the overlay is open.
func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "r":
		m.showHistory = false
		return m, nil

	case "down", "j":
		if m.historyIdx < len(m.historyEntries)-1 {
			m.historyIdx++
		}
		return m, nil

	case "up", "k":
		if m.historyIdx > 0 {
			m.historyIdx--
		}
		return m, nil

	case "enter":
		if m.historyIdx < len(m.historyEntries) {
			m.ctrls.searchBox.SubmitText(m.historyEntries[m.historyIdx].Query)
			m.showHistory = false
			m.focused = PaneResults
			m.resultIdx = 0
		}
		return m, nil

	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// renderHistory draws the recent-queries overlay.
func (m Model) renderHistory() string {
	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Recent queries"))
	b.WriteString("\n\n")

	if len(m.historyEntries) == 0 {
		b.WriteString(m.styles.FaintText.Render("nothing here yet"))
	}

	for i, e := range m.historyEntries {
		row := fmt.Sprintf("%-30s %5s hits  %s",
			truncate(e.Query, 30),
			formatCount(e.LastHits),
			humanizeAge(time.Since(e.LastUsed)))
		if i == m.historyIdx {
			row = m.styles.Selected.Render(row)
		} else {
			row = m.styles.Text.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.FaintText.Render("enter: search again · esc: close"))

	box := m.styles.PaneFocused.Padding(1, 3).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// humanizeAge formats how long ago a query was last used.
func humanizeAge(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < time.Minute {
		return "just now"
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
	return fmt.Sprintf("%dd ago", int(d.Hours()/24))
}
