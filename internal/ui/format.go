package ui

import (
	"fmt"
	"strings"

	"github.com/ahouk/winnow/internal/controller"
	"github.com/ahouk/winnow/internal/quarry"
)

// The formatters in this file are pure: state in, plain text out. Styling
// is layered on afterwards so the text can be tested without ANSI escapes.

// formatHitRow renders one result as a two-line entry: a numbered title
// with the relevance score, and an indented snippet.
func formatHitRow(rank int, hit quarry.Hit, width int) string {
	title := hit.Title
	if title == "" {
		title = hit.ID
	}
	head := fmt.Sprintf("%3d. %s", rank, truncate(title, width-12))
	head = padRight(head, width-7) + fmt.Sprintf("%6.2f", hit.Score)

	snippet := truncate(collapseSpace(hit.Snippet), width-5)
	if snippet == "" {
		return head
	}
	return head + "\n     " + snippet
}

// formatFacetRow renders one facet value with its selection marker and count.
func formatFacetRow(value controller.FacetValueState, width int) string {
	marker := ternary(value.Selected, "[x]", "[ ]")
	count := fmt.Sprintf("(%s)", formatCount(value.Count))
	label := truncate(value.Value, width-len(marker)-len(count)-2)
	row := fmt.Sprintf("%s %s", marker, label)
	return padRight(row, width-len(count)) + count
}

// formatSummaryLine renders the one-line result summary for the status bar.
func formatSummaryLine(s controller.QuerySummaryState) string {
	if !s.Searched {
		return "no search yet"
	}
	if s.Total == 0 {
		if s.Query == "" {
			return "no matches"
		}
		return fmt.Sprintf("no matches for %q", s.Query)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s-%s of %s", formatCount(s.FirstResult), formatCount(s.LastResult), formatCount(s.Total))
	if s.Query != "" {
		fmt.Fprintf(&b, " for %q", s.Query)
	}
	if lat := formatLatency(s.Duration); lat != "" {
		fmt.Fprintf(&b, " in %s", lat)
	}
	return b.String()
}

// formatIndexLine renders the index identity for the header.
func formatIndexLine(s controller.QuerySummaryState, index string) string {
	if !s.HasStats {
		return index
	}
	name := s.IndexName
	if name == "" {
		name = index
	}
	line := fmt.Sprintf("%s · %s docs", name, formatCount(s.Documents))
	if !s.Healthy {
		line += " · degraded"
	}
	return line
}
