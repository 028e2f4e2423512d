package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const facetPaneWidth = 30

// renderMain composes the full-screen layout: header, search bar, the
// facets/results panes, and the status bar.
func (m Model) renderMain() string {
	header := m.renderHeader()
	search := m.renderSearchBar()
	status := m.renderStatusBar()

	chrome := lipgloss.Height(header) + lipgloss.Height(search) + lipgloss.Height(status)
	bodyHeight := m.height - chrome
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	facets := m.renderFacets(bodyHeight)
	results := m.renderResults(m.width-facetPaneWidth, bodyHeight)
	body := lipgloss.JoinHorizontal(lipgloss.Top, facets, results)

	return lipgloss.JoinVertical(lipgloss.Left, header, search, body, status)
}

func (m Model) renderHeader() string {
	logo := m.styles.Logo.Render("winnow")
	index := m.styles.MutedText.Render(formatIndexLine(m.summaryView, m.index))

	gap := m.width - lipgloss.Width(logo) - lipgloss.Width(index) - 3
	if gap < 1 {
		gap = 1
	}
	line := logo + strings.Repeat(" ", gap) + index
	return m.styles.Header.Width(m.width).Render(line)
}

func (m Model) renderSearchBar() string {
	style := m.paneStyle(PaneSearch)
	var line string
	if m.focused == PaneSearch {
		line = m.input.View()
	} else {
		text := m.searchView.Text
		if text == "" {
			line = m.styles.FaintText.Render("/ to search")
		} else {
			line = "/ " + m.styles.Text.Render(text)
		}
	}
	if m.searchView.Searching {
		line += m.styles.WarningText.Render("  searching...")
	}
	return style.Width(m.width - 2).Render(line)
}

func (m Model) renderFacets(height int) string {
	style := m.paneStyle(PaneFacets)
	inner := facetPaneWidth - 4

	var b strings.Builder
	b.WriteString(m.styles.AccentText.Render("Filters"))
	b.WriteString("\n")

	if len(m.facetViews) == 0 {
		b.WriteString(m.styles.FaintText.Render("no facets configured"))
	}

	for fi, view := range m.facetViews {
		b.WriteString("\n")
		title := view.Field
		if view.HasSelection {
			title += " *"
		}
		b.WriteString(m.styles.MutedText.Render(strings.ToUpper(title)))
		b.WriteString("\n")

		if len(view.Values) == 0 {
			b.WriteString(m.styles.FaintText.Render("  (no values)"))
			b.WriteString("\n")
			continue
		}
		for vi, value := range view.Values {
			row := formatFacetRow(value, inner)
			switch {
			case m.focused == PaneFacets && fi == m.facetIdx && vi == m.valueIdx:
				row = m.styles.Selected.Render(row)
			case value.Selected:
				row = m.styles.SuccessText.Render(row)
			default:
				row = m.styles.Text.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	return style.Width(facetPaneWidth - 2).Height(height - 2).Render(b.String())
}

func (m Model) renderResults(width, height int) string {
	style := m.paneStyle(PaneResults)
	inner := width - 4
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder
	switch {
	case m.resultView.LastError != "":
		b.WriteString(m.styles.DangerText.Render("search failed: " + m.resultView.LastError))
	case !m.resultView.Searched && !m.resultView.Loading:
		b.WriteString(m.styles.FaintText.Render("press / and type a query to search"))
	case !m.resultView.HasResults() && m.resultView.Loading:
		b.WriteString(m.styles.WarningText.Render("searching..."))
	case !m.resultView.HasResults():
		b.WriteString(m.styles.FaintText.Render("no matching documents"))
	default:
		first := m.summaryView.FirstResult
		for i, hit := range m.resultView.Hits {
			row := formatHitRow(first+i, hit, inner)
			if m.focused == PaneResults && i == m.resultIdx {
				lines := strings.Split(row, "\n")
				for j, line := range lines {
					lines[j] = m.styles.Selected.Render(padRight(line, inner))
				}
				row = strings.Join(lines, "\n")
			} else {
				row = m.styles.Text.Render(row)
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	return style.Width(width - 2).Height(height - 2).Render(b.String())
}

func (m Model) renderStatusBar() string {
	summary := formatSummaryLine(m.summaryView)

	var pager string
	if m.pagerView.PageCount > 1 {
		pager = fmt.Sprintf("page %d/%d", m.pagerView.Page, m.pagerView.PageCount)
	}

	hints := "?: help · tab: panes · q: quit"

	left := summary
	if pager != "" {
		left += "  ·  " + pager
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hints) - 3
	if gap < 1 {
		gap = 1
	}
	line := left + strings.Repeat(" ", gap) + hints
	return m.styles.Footer.Width(m.width).Render(line)
}

// paneStyle returns the bordered pane style, highlighted when focused.
func (m Model) paneStyle(pane Pane) lipgloss.Style {
	if m.focused == pane {
		return m.styles.PaneFocused
	}
	return m.styles.Pane
}
