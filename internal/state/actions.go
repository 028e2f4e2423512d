package state

import "github.com/ahouk/winnow/internal/quarry"

// Action is a committed state transition request. Only this package's
// concrete action types satisfy it; reducers are the sole consumers.
type Action interface {
	isAction()
}

// SetQuery replaces the query text without committing a search.
type SetQuery struct {
	Text string
}

// SubmitSearch commits the current query as a new search intent.
type SubmitSearch struct {
	RequestID string
}

// RegisterFacet declares a facet field the UI wants counted and filterable.
type RegisterFacet struct {
	Field string
}

// ToggleFacetValue flips one facet value in or out of the filter and commits
// a new search intent from page zero.
type ToggleFacetValue struct {
	Field     string
	Value     string
	RequestID string
}

// ClearFacet removes every selection for one field, or for all fields when
// Field is empty, and commits a new search intent.
type ClearFacet struct {
	Field     string
	RequestID string
}

// NextPage advances the result window by one page.
type NextPage struct {
	RequestID string
}

// PrevPage moves the result window back by one page.
type PrevPage struct {
	RequestID string
}

// SelectPage jumps to a 1-based page number.
type SelectPage struct {
	Page      int
	RequestID string
}

// SetPageSize changes the window size and resets to the first page.
type SetPageSize struct {
	Size      int
	RequestID string
}

// SearchFulfilled records a successful API response. Responses whose
// RequestID no longer matches the committed intent are ignored.
type SearchFulfilled struct {
	RequestID string
	Response  quarry.SearchResponse
}

// SearchRejected records a failed search attempt. Previous hits are kept.
type SearchRejected struct {
	RequestID string
	Err       string
}

// StatsUpdated records daemon health and index stats.
type StatsUpdated struct {
	Stats   quarry.IndexStats
	Healthy bool
	Version string
}

func (SetQuery) isAction()         {}
func (SubmitSearch) isAction()     {}
func (RegisterFacet) isAction()    {}
func (ToggleFacetValue) isAction() {}
func (ClearFacet) isAction()       {}
func (NextPage) isAction()         {}
func (PrevPage) isAction()         {}
func (SelectPage) isAction()       {}
func (SetPageSize) isAction()      {}
func (SearchFulfilled) isAction()  {}
func (SearchRejected) isAction()   {}
func (StatsUpdated) isAction()     {}
