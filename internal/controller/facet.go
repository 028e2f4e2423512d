package controller

import (
	"github.com/google/uuid"

	"github.com/ahouk/winnow/internal/state"
)

// FacetValueState is one selectable value bucket.
type FacetValueState struct {
	Value    string `json:"value"`
	Count    int    `json:"count"`
	Selected bool   `json:"selected"`
}

// FacetViewState is the derived view of one facet field.
type FacetViewState struct {
	Field        string            `json:"field"`
	Values       []FacetValueState `json:"values"`
	HasSelection bool              `json:"hasSelection"`
}

// Facet exposes one facet field's counts and drives its selection.
type Facet struct {
	*Controller[FacetViewState]
	store *state.Store
	field string
}

// NewFacet registers field with the store and returns its controller.
// Registration is idempotent; two controllers on one field share state.
func NewFacet(store *state.Store, field string, opts ...Option) *Facet {
	store.Dispatch(state.RegisterFacet{Field: field})
	return &Facet{
		Controller: New(store, deriveFacet(field), opts...),
		store:      store,
		field:      field,
	}
}

func deriveFacet(field string) func(state.State) FacetViewState {
	return func(s state.State) FacetViewState {
		facet := s.Facets.Fields[field]
		view := FacetViewState{Field: field}
		for _, fc := range facet.Values {
			view.Values = append(view.Values, FacetValueState{
				Value:    fc.Value,
				Count:    fc.Count,
				Selected: facet.IsSelected(fc.Value),
			})
		}
		view.HasSelection = len(facet.Selected) > 0
		return view
	}
}

// Field returns the facet field this controller is bound to.
func (f *Facet) Field() string {
	return f.field
}

// ToggleValue flips one value in or out of the filter and commits a new
// search intent.
func (f *Facet) ToggleValue(value string) string {
	id := uuid.NewString()
	f.store.Dispatch(state.ToggleFacetValue{Field: f.field, Value: value, RequestID: id})
	return id
}

// Clear removes every selection for this field.
func (f *Facet) Clear() string {
	id := uuid.NewString()
	f.store.Dispatch(state.ClearFacet{Field: f.field, RequestID: id})
	return id
}

// ClearAllFilters drops every selection across all facet fields and commits
// a new search intent.
func ClearAllFilters(store *state.Store) string {
	id := uuid.NewString()
	store.Dispatch(state.ClearFacet{RequestID: id})
	return id
}
