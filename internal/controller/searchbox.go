package controller

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ahouk/winnow/internal/state"
)

// SearchBoxState is the search box's derived view.
type SearchBoxState struct {
	Text      string `json:"text"`
	Searching bool   `json:"searching"`
}

// SearchBox drives query text editing and search submission.
type SearchBox struct {
	*Controller[SearchBoxState]
	store *state.Store
}

// NewSearchBox builds a search box controller bound to store.
func NewSearchBox(store *state.Store, opts ...Option) *SearchBox {
	return &SearchBox{
		Controller: New(store, deriveSearchBox, opts...),
		store:      store,
	}
}

func deriveSearchBox(s state.State) SearchBoxState {
	return SearchBoxState{
		Text:      s.Query.Text,
		Searching: s.Results.Loading,
	}
}

// UpdateText replaces the query text without searching.
func (b *SearchBox) UpdateText(text string) {
	b.store.Dispatch(state.SetQuery{Text: text})
}

// Submit commits the current text as a new search intent and returns the
// request id stamped on it. Blank queries are submitted too: an empty query
// is a browse-all in a faceted index.
func (b *SearchBox) Submit() string {
	id := uuid.NewString()
	b.store.Dispatch(state.SubmitSearch{RequestID: id})
	return id
}

// SubmitText is UpdateText followed by Submit in one step.
func (b *SearchBox) SubmitText(text string) string {
	b.UpdateText(strings.TrimSpace(text))
	return b.Submit()
}
