package controller

import (
	"time"

	"github.com/ahouk/winnow/internal/state"
)

// QuerySummaryState describes the last completed search for the status line.
type QuerySummaryState struct {
	Query       string        `json:"query"`
	Total       int           `json:"total"`
	FirstResult int           `json:"firstResult"`
	LastResult  int           `json:"lastResult"`
	Duration    time.Duration `json:"duration"`
	Searched    bool          `json:"searched"`
	IndexName   string        `json:"indexName"`
	Documents   int           `json:"documents"`
	Healthy     bool          `json:"healthy"`
	HasStats    bool          `json:"hasStats"`
}

// QuerySummary exposes totals, latency, and index health in one view.
type QuerySummary struct {
	*Controller[QuerySummaryState]
}

// NewQuerySummary builds a query summary controller bound to store.
func NewQuerySummary(store *state.Store, opts ...Option) *QuerySummary {
	return &QuerySummary{
		Controller: New(store, deriveQuerySummary, opts...),
	}
}

func deriveQuerySummary(s state.State) QuerySummaryState {
	view := QuerySummaryState{
		Query:     s.Query.Text,
		Total:     s.Page.Total,
		Duration:  s.Results.Duration,
		Searched:  s.Results.Searched,
		IndexName: s.Stats.IndexName,
		Documents: s.Stats.Documents,
		Healthy:   s.Stats.Healthy,
		HasStats:  s.Stats.HasStats,
	}
	if s.Page.Total > 0 {
		view.FirstResult = s.Page.Offset + 1
		last := s.Page.Offset + len(s.Results.Hits)
		if last < view.FirstResult {
			last = view.FirstResult
		}
		view.LastResult = last
	}
	return view
}
