package controller

import (
	"time"

	"github.com/ahouk/winnow/internal/quarry"
	"github.com/ahouk/winnow/internal/state"
)

// ResultListState is the derived view of the current result window.
type ResultListState struct {
	Hits      []quarry.Hit  `json:"hits"`
	Loading   bool          `json:"loading"`
	LastError string        `json:"lastError"`
	Duration  time.Duration `json:"duration"`
	Searched  bool          `json:"searched"`
}

// HasResults reports whether there is anything to render.
func (r ResultListState) HasResults() bool {
	return len(r.Hits) > 0
}

// ResultList exposes the hits of the most recent completed search.
type ResultList struct {
	*Controller[ResultListState]
}

// NewResultList builds a result list controller bound to store.
func NewResultList(store *state.Store, opts ...Option) *ResultList {
	return &ResultList{
		Controller: New(store, deriveResultList, opts...),
	}
}

func deriveResultList(s state.State) ResultListState {
	return ResultListState{
		Hits:      s.Results.Hits,
		Loading:   s.Results.Loading,
		LastError: s.Results.LastError,
		Duration:  s.Results.Duration,
		Searched:  s.Results.Searched,
	}
}
