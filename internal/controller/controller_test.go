package controller

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ahouk/winnow/internal/quarry"
	"github.com/ahouk/winnow/internal/state"
)

type countView struct {
	Count int `json:"count"`
}

func newCountController(store *state.Store) *Controller[countView] {
	return New(store, func(s state.State) countView {
		return countView{Count: len(s.Results.Hits)}
	})
}

func fulfil(store *state.Store, requestID string, hits ...quarry.Hit) {
	store.Dispatch(state.SubmitSearch{RequestID: requestID})
	store.Dispatch(state.SearchFulfilled{RequestID: requestID, Response: quarry.SearchResponse{
		Hits:  hits,
		Total: len(hits),
	}})
}

func TestSubscribe_InvokesListenerOnceSynchronously(t *testing.T) {
	store := state.NewStore()
	c := newCountController(store)

	calls := 0
	unsub := c.Subscribe(func() { calls++ })
	defer unsub()

	if calls != 1 {
		t.Fatalf("calls = %d, want exactly 1 before Subscribe returns", calls)
	}
}

func TestSubscribe_NotifiesOnDerivedChange(t *testing.T) {
	store := state.NewStore()
	fulfil(store, "r1", quarry.Hit{ID: "a"}, quarry.Hit{ID: "b"})

	c := newCountController(store)

	calls := 0
	var seen []int
	unsub := c.Subscribe(func() {
		calls++
		seen = append(seen, c.State().Count)
	})
	defer unsub()

	// Intent dispatches change Loading but not the hit count, so only the
	// fulfil carrying a third hit may fire the listener.
	fulfil(store, "r2", quarry.Hit{ID: "a"}, quarry.Hit{ID: "b"}, quarry.Hit{ID: "c"})

	if calls != 2 {
		t.Fatalf("calls = %d, want 2 (initial + count change)", calls)
	}
	if seen[0] != 2 || seen[1] != 3 {
		t.Fatalf("seen counts = %v, want [2 3]", seen)
	}
}

func TestSubscribe_SuppressesStructurallyIdenticalUpdates(t *testing.T) {
	store := state.NewStore()
	fulfil(store, "r1", quarry.Hit{ID: "a"}, quarry.Hit{ID: "b"}, quarry.Hit{ID: "c"})

	c := newCountController(store)

	calls := 0
	unsub := c.Subscribe(func() { calls++ })
	defer unsub()

	// Reducers rebuild the hits slice, but the derived count is unchanged.
	fulfil(store, "r2", quarry.Hit{ID: "x"}, quarry.Hit{ID: "y"}, quarry.Hit{ID: "z"})

	if calls != 1 {
		t.Fatalf("calls = %d, want 1 (identical derived state suppressed)", calls)
	}
}

func TestSubscribe_UnsubscribeIsIdempotentAndFinal(t *testing.T) {
	store := state.NewStore()
	c := newCountController(store)

	calls := 0
	unsub := c.Subscribe(func() { calls++ })

	unsub()
	unsub() // must not panic or double-remove another registration

	fulfil(store, "r1", quarry.Hit{ID: "a"})

	if calls != 1 {
		t.Fatalf("calls = %d, want 1 (silent after unsubscribe)", calls)
	}
}

func TestSubscribe_IndependentRegistrations(t *testing.T) {
	store := state.NewStore()
	c := newCountController(store)

	var order []string
	unsubA := c.Subscribe(func() { order = append(order, "a") })
	unsubB := c.Subscribe(func() { order = append(order, "b") })
	defer unsubB()

	unsubA()
	fulfil(store, "r1", quarry.Hit{ID: "a"})

	// Initial a, initial b, then only b on the change.
	want := []string{"a", "b", "b"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestSubscribe_FailsOpenOnUnserializableState(t *testing.T) {
	store := state.NewStore()

	// A func value cannot be marshalled; every dispatch must notify.
	c := New(store, func(s state.State) map[string]any {
		return map[string]any{"fn": func() {}, "text": s.Query.Text}
	})

	calls := 0
	unsub := c.Subscribe(func() { calls++ })
	defer unsub()

	if calls != 1 {
		t.Fatalf("calls = %d, want initial invocation despite marshal failure", calls)
	}

	store.Dispatch(state.SetQuery{Text: "same"})
	store.Dispatch(state.SetQuery{Text: "same"}) // no state change at all

	if calls != 3 {
		t.Fatalf("calls = %d, want 3 (fail-open notifies on every dispatch)", calls)
	}
}

func TestSubscribe_RecoveryAfterSerializationFailure(t *testing.T) {
	store := state.NewStore()

	// Serializable only when the query is non-empty; starts broken.
	c := New(store, func(s state.State) map[string]any {
		if s.Query.Text == "" {
			return map[string]any{"fn": func() {}}
		}
		return map[string]any{"text": s.Query.Text}
	})

	calls := 0
	unsub := c.Subscribe(func() { calls++ })
	defer unsub()

	store.Dispatch(state.SetQuery{Text: "ok"}) // broken → good: notify
	store.Dispatch(state.SetQuery{Text: "ok"}) // good → good, identical: suppress

	if calls != 2 {
		t.Fatalf("calls = %d, want 2 (suppression resumes once serializable)", calls)
	}
}

func TestSubscribe_ConcurrentDispatchesSerializeNotifications(t *testing.T) {
	store := state.NewStore()
	c := New(store, func(s state.State) map[string]string {
		return map[string]string{"text": s.Query.Text}
	})

	// The input loop and the searcher dispatch from different goroutines;
	// the subscription must never run its listener twice at once.
	var active, peak atomic.Int32
	var texts []string
	unsub := c.Subscribe(func() {
		n := active.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		texts = append(texts, c.State()["text"])
		active.Add(-1)
	})
	defer unsub()

	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				store.Dispatch(state.SetQuery{Text: fmt.Sprintf("g%d-%d", g, i)})
			}
		}(g)
	}
	wg.Wait()

	if got := peak.Load(); got > 1 {
		t.Fatalf("listener overlap: %d concurrent runs, want serialized", got)
	}
	if len(texts) < 2 {
		t.Fatalf("listener ran %d times, want initial plus at least one change", len(texts))
	}
}

func TestSubscribe_SilentAfterConcurrentUnsubscribe(t *testing.T) {
	store := state.NewStore()
	c := newCountController(store)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			fulfil(store, fmt.Sprintf("r%d", i), make([]quarry.Hit, i%3)...)
		}
	}()

	var stopped, late atomic.Bool
	unsub := c.Subscribe(func() {
		if stopped.Load() {
			late.Store(true)
		}
	})
	unsub()
	stopped.Store(true)

	<-done
	if late.Load() {
		t.Fatal("listener invoked after unsubscribe returned")
	}
}

func TestState_IsRecomputedOnEveryAccess(t *testing.T) {
	store := state.NewStore()
	c := newCountController(store)

	if got := c.State().Count; got != 0 {
		t.Fatalf("Count = %d, want 0", got)
	}
	fulfil(store, "r1", quarry.Hit{ID: "a"})
	if got := c.State().Count; got != 1 {
		t.Fatalf("Count = %d, want 1 without any subscription", got)
	}
}
