// Package controller provides reactive, change-detected views over the
// shared state store.
//
// # Overview
//
// A Controller binds a pure projection to the store and offers exactly two
// things upward: State(), the derived view recomputed on demand, and
// Subscribe(listener), which fires the listener once immediately and then
// after every dispatch that changes the derived view. Consumers never learn
// about dispatches that do not affect their slice of the state.
//
// # Architecture
//
//	          store.Dispatch(action)
//	                  │
//	                  ▼
//	      ┌──────────────────────┐
//	      │ store notifies subs  │
//	      └──────────┬───────────┘
//	                 │ (one callback per subscription)
//	                 ▼
//	      derive(store.State())
//	                 │
//	                 ▼
//	      json.Marshal → compare with previous snapshot
//	         │ different              │ identical
//	         ▼                        ▼
//	      listener()               (suppressed)
//
// # Change Detection
//
// Equality is deep structural, judged by comparing JSON serializations of
// the derived view. Reducers rebuild slices and maps freely, so reference
// comparison would fire on every dispatch; serialization tolerates fresh
// containers holding identical data. The projection's output must therefore
// be JSON-serializable: no cycles, no funcs, no channels.
//
// When serialization fails, detection fails open: the listener is notified
// unconditionally and a warning is logged. A missed notification wedges the
// UI; a spurious one costs a redraw. The pipeline never panics on a bad
// projection.
//
// # Subscription Lifecycle
//
// Each Subscribe call is an independent registration with its own snapshot,
// so two listeners on one controller never interfere. The initial listener
// invocation happens synchronously before Subscribe returns; consumers get
// their first snapshot without a separate read. The returned Unsubscribe is
// idempotent and final: after the first call, the listener is silent no
// matter how many dispatches follow. Re-subscribing later creates a fresh
// registration on the same controller.
//
// Listeners run synchronously inside the store's notification stack, in
// registration order. A panicking listener propagates to the dispatcher;
// this package does not isolate one consumer's failure from another.
//
// Dispatches arrive from more than one goroutine: the input loop commits
// intents while the searcher delivers fulfilments. A per-subscription mutex
// serializes the re-derive/compare/update cycle, so concurrent dispatches
// cannot tear a snapshot or run one listener twice at once. Unsubscribe
// takes the same mutex, which is what makes its silence guarantee hold
// across goroutines — and why it must not be called from inside its own
// listener.
//
// # Concrete Controllers
//
// The generic base carries the subscribe/diff machinery once; concrete
// controllers supply a projection and command methods:
//
//   - SearchBox: query text editing, submit, suggestions from history
//   - Facet: one facet field's values, counts, and selection toggles
//   - ResultList: hits, loading flag, last error
//   - Pager: page number and count, next/prev/select navigation
//   - QuerySummary: totals, latency, and result-range line
//
// Command methods mutate only by dispatching store actions; the controller
// itself never writes state. Intent-committing commands stamp a fresh
// request id so the searcher and the stale-response guard can correlate
// responses with intents.
package controller
