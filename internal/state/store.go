package state

import (
	"sync"

	"github.com/ahouk/winnow/internal/quarry"
)

// Store coordinates dispatch and change notification for the shared state.
type Store struct {
	mu        sync.RWMutex
	state     State
	listeners []storeListener
	nextID    int
}

type storeListener struct {
	id int
	fn func()
}

// StoreOption adjusts the initial state of a new store.
type StoreOption func(*State)

// WithPageSize sets the initial result window size.
func WithPageSize(size int) StoreOption {
	return func(s *State) {
		if size > 0 {
			s.Page.Size = size
		}
	}
}

// NewStore returns a store holding the initial state.
func NewStore(opts ...StoreOption) *Store {
	initial := initialState()
	for _, opt := range opts {
		opt(&initial)
	}
	return &Store{state: initial}
}

// State returns a copy of the current state. Nested slices and maps are
// cloned so callers can hold a snapshot across later dispatches.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.state)
}

// Dispatch runs the reducer and then notifies subscribers in registration
// order. Notification happens outside the lock so callbacks can re-read
// state; by the time they run the transition is committed.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	notify := make([]func(), len(s.listeners))
	for i, l := range s.listeners {
		notify[i] = l.fn
	}
	s.mu.Unlock()

	for _, fn := range notify {
		fn()
	}
}

// Subscribe registers fn to run after every dispatch. The callback receives
// no payload; it must re-read State(). The returned function removes the
// registration and is safe to call more than once. Removal takes effect for
// subsequent dispatches: a dispatch that has already snapshotted the
// listener list may deliver one final call, and it is safe to unsubscribe
// from inside a callback. Controllers layer a stricter guarantee on top
// (controller.Unsubscribe waits out in-flight notification).
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, storeListener{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func cloneState(src State) State {
	dup := src
	dup.Results.Hits = cloneHits(src.Results.Hits)
	dup.Facets.Order = append([]string(nil), src.Facets.Order...)
	dup.Facets.Fields = make(map[string]FacetState, len(src.Facets.Fields))
	for field, facet := range src.Facets.Fields {
		facet.Values = append([]quarry.FacetCount(nil), facet.Values...)
		facet.Selected = append([]string(nil), facet.Selected...)
		dup.Facets.Fields[field] = facet
	}
	return dup
}

func cloneHits(hits []quarry.Hit) []quarry.Hit {
	if len(hits) == 0 {
		return nil
	}
	dup := make([]quarry.Hit, len(hits))
	copy(dup, hits)
	return dup
}
