// Package state provides the shared query-state store for winnow.
//
// # Overview
//
// This package implements a single-store, action/reducer state container for
// the search session: query text, pagination window, facet selections, the
// latest results, and daemon stats. It is the coordination point where the
// background searcher meets the UI.
//
// # Architecture
//
// The package follows a dispatch/notify pattern:
//
//	Producers:                       Consumers:
//	┌──────────────────────┐        ┌──────────────────────┐
//	│ controller commands  │        │ controllers          │
//	│ searcher results     │        │  (derive + diff)     │
//	│      ↓               │        │      ↑               │
//	│ store.Dispatch(a)    │───────→│ subscription fires   │
//	│  reduce(state, a)    │ (mutex)│ store.State() reread │
//	└──────────────────────┘        └──────────────────────┘
//
// The Store mediates between these parties, ensuring:
//   - Atomic transitions (reduce-and-replace under the lock)
//   - No data races (mutex-protected access, defensive copies)
//   - Notification after commit (callbacks always observe the new state)
//   - Registration-order delivery (subscribers fire in Subscribe order)
//
// # Core Types
//
// State:
//   - Plain-data root value: Query, Page, Facets, Results, Stats
//   - JSON-serializable, which is what controllers diff against
//   - Returned by value with deep copies of nested slices and maps
//
// Action:
//   - Closed interface over this package's concrete action structs
//   - Intent actions (SubmitSearch, ToggleFacetValue, page moves) carry a
//     request id and flip Results.Loading
//   - Outcome actions (SearchFulfilled, SearchRejected) carry the request id
//     they answer and are dropped when the intent has moved on
//
// Store:
//   - Dispatch applies the reducer, then notifies subscribers outside the lock
//   - Subscribe returns a revocable, idempotent unsubscribe function
//   - Subscribers get no payload; they must re-read State()
//
// # Reducer Semantics
//
// Query text is normalized to NFC in the SetQuery reducer so that history
// persistence and the wire always see one canonical form.
//
// Intent-changing actions reset the page offset to zero (a new query or
// filter invalidates the old window) and stamp Query.RequestID. Page moves
// clamp into [0, lastPageOffset] and commit a new intent only when the
// offset actually changes, so hammering "next" at the last page is silent.
//
// Stale responses are a first-class concern: SearchFulfilled and
// SearchRejected are ignored unless their RequestID still matches
// Query.RequestID. A slow response for a query the user already replaced
// can never clobber newer results.
//
// SearchRejected keeps the previous hits and records the error; the UI
// always has the most recent successful data to display.
//
// # Concurrency Model
//
// Dispatch serializes transitions under a mutex and snapshots the listener
// list before invoking callbacks, so a callback may unsubscribe (itself or
// others) without corrupting delivery. Callbacks run synchronously on the
// dispatching goroutine; by the time one runs, the transition is committed
// and State() reflects it. There are no partial or torn reads.
//
// # Testing Considerations
//
// NewStore() needs no further initialization. Reducers are pure; tests can
// drive them through Dispatch and assert on State() snapshots, or call
// reduce directly for table tests.
package state
