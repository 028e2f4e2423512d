// Package ui provides the terminal user interface for the winnow application.
//
// # Architecture Overview
//
// The UI is built on Bubble Tea. It never talks to the quarry daemon
// directly: every piece of screen state is read from a view controller
// (internal/controller), and every user action is expressed by calling a
// controller method, which dispatches an action into the shared store. The
// searcher goroutine (internal/app) observes the same store and performs
// the actual network calls.
//
//	key press ──> controller method ──> store dispatch
//	                                        │
//	  refresh channel <── controller notify ┘
//	       │
//	  refreshMsg ──> Model re-reads controller states ──> View
//
// # Package Structure
//
//   - ui.go: Options, controller wiring, the refresh bridge, and Run
//   - app.go: the root Model with focus handling and key routing
//   - views.go: the main layout (header, search bar, facets, results, status)
//   - format.go: pure text formatters, kept free of styling for testing
//   - help.go / history_view.go: full-screen overlays
//   - theme.go: color themes and Lipgloss styles
//   - keys.go: key bindings
//
// # The Refresh Bridge
//
// Controller notifications arrive on whatever goroutine dispatched the
// action, which is usually the searcher. Bubble Tea models must only be
// mutated inside Update, so notifications are funneled through a buffered
// channel: the subscription listener does a non-blocking send, and a
// waitForRefresh command turns each pending signal into a refreshMsg. A
// burst of store changes collapses into a single repaint.
//
// # Panes and Overlays
//
// The main layout has three focusable regions: the search box, the facet
// sidebar, and the result list. Tab cycles focus; "/" jumps straight to the
// search box. The "?" help overlay and the "r" recent-queries overlay each
// take over the whole screen until dismissed.
package ui
