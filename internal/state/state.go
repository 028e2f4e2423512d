package state

import (
	"time"

	"github.com/ahouk/winnow/internal/quarry"
)

// DefaultPageSize is used until preferences or a SetPageSize action override it.
const DefaultPageSize = 25

// State is the root immutable value shared by every controller.
type State struct {
	Query   QueryState
	Page    PageState
	Facets  FacetsState
	Results ResultsState
	Stats   StatsState
}

// QueryState holds the current query text and the id of the last committed
// search intent. RequestID changes exactly when a new search should run.
type QueryState struct {
	Text      string
	RequestID string
}

// PageState holds pagination bookkeeping for the result window.
type PageState struct {
	Offset int
	Size   int
	Total  int
}

// Page returns the 1-based page number for the current offset.
func (p PageState) Page() int {
	if p.Size <= 0 {
		return 1
	}
	return p.Offset/p.Size + 1
}

// PageCount returns the number of pages implied by Total and Size.
func (p PageState) PageCount() int {
	if p.Size <= 0 || p.Total <= 0 {
		return 1
	}
	return (p.Total + p.Size - 1) / p.Size
}

// lastPageOffset returns the largest valid offset for the given totals.
func lastPageOffset(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return ((total - 1) / size) * size
}

// FacetsState tracks facet fields in registration order plus their values
// and selections.
type FacetsState struct {
	Order  []string
	Fields map[string]FacetState
}

// FacetState is one facet field: the value counts reported by the last
// search and the values the user has selected as filters.
type FacetState struct {
	Field    string
	Values   []quarry.FacetCount
	Selected []string
}

// IsSelected reports whether value is currently part of the filter.
func (f FacetState) IsSelected(value string) bool {
	for _, v := range f.Selected {
		if v == value {
			return true
		}
	}
	return false
}

// selectedFilters flattens facet selections into the client's filter shape.
func (f FacetsState) selectedFilters() map[string][]string {
	filters := make(map[string][]string)
	for _, field := range f.Order {
		facet := f.Fields[field]
		if len(facet.Selected) > 0 {
			filters[field] = append([]string(nil), facet.Selected...)
		}
	}
	if len(filters) == 0 {
		return nil
	}
	return filters
}

// Filters returns the selected facet values keyed by field, ready to send
// with a search request. The returned map is a copy.
func (f FacetsState) Filters() map[string][]string {
	return f.selectedFilters()
}

// ResultsState holds the outcome of the most recent completed search along
// with the in-flight flag for the current one.
type ResultsState struct {
	Hits      []quarry.Hit
	Loading   bool
	LastError string
	Duration  time.Duration
	RequestID string
	Searched  bool
}

// StatsState mirrors daemon health and index stats for the status bar.
type StatsState struct {
	IndexName string
	Documents int
	Healthy   bool
	Version   string
	HasStats  bool
}

// initialState returns the state a fresh store starts from.
func initialState() State {
	return State{
		Page:   PageState{Size: DefaultPageSize},
		Facets: FacetsState{Fields: make(map[string]FacetState)},
	}
}
