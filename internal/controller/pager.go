package controller

import (
	"github.com/google/uuid"

	"github.com/ahouk/winnow/internal/state"
)

// PagerState is the derived pagination view.
type PagerState struct {
	Page        int  `json:"page"`
	PageCount   int  `json:"pageCount"`
	PageSize    int  `json:"pageSize"`
	Total       int  `json:"total"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// Pager drives navigation through the result window.
type Pager struct {
	*Controller[PagerState]
	store *state.Store
}

// NewPager builds a pager controller bound to store.
func NewPager(store *state.Store, opts ...Option) *Pager {
	return &Pager{
		Controller: New(store, derivePager, opts...),
		store:      store,
	}
}

func derivePager(s state.State) PagerState {
	page := s.Page.Page()
	count := s.Page.PageCount()
	return PagerState{
		Page:        page,
		PageCount:   count,
		PageSize:    s.Page.Size,
		Total:       s.Page.Total,
		HasPrevious: page > 1,
		HasNext:     page < count,
	}
}

// NextPage advances one page. At the last page this is a silent no-op.
func (p *Pager) NextPage() string {
	id := uuid.NewString()
	p.store.Dispatch(state.NextPage{RequestID: id})
	return id
}

// PreviousPage moves back one page. At the first page this is a silent no-op.
func (p *Pager) PreviousPage() string {
	id := uuid.NewString()
	p.store.Dispatch(state.PrevPage{RequestID: id})
	return id
}

// SelectPage jumps to a 1-based page number, clamped into range.
func (p *Pager) SelectPage(page int) string {
	id := uuid.NewString()
	p.store.Dispatch(state.SelectPage{Page: page, RequestID: id})
	return id
}

// SetPageSize changes the window size and returns to the first page.
func (p *Pager) SetPageSize(size int) string {
	id := uuid.NewString()
	p.store.Dispatch(state.SetPageSize{Size: size, RequestID: id})
	return id
}
