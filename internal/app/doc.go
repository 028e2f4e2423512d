// Package app provides the orchestration layer for winnow.
//
// # Overview
//
// This package wires together configuration, the API client, the state
// store, the background searcher, and the UI to create the complete winnow
// experience. It serves as the composition root where all dependencies are
// initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load winnow configuration from ~/.config/winnow/config.toml
//  2. Load user preferences (theme, page size)
//  3. Open the file-backed logger and the query history database
//  4. Initialize the HTTP client for the quarry API
//  5. Create the shared state.Store seeded with the preferred page size
//  6. Launch the background searcher goroutine
//  7. Start the TUI and block until the user exits or the context cancels
//
// # Components
//
//   - app.go: Main Run function
//   - searcher.go: Background goroutine that executes committed search intents
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read winnow config
//	       ├─────> prefs.Load()         Read user preferences
//	       ├─────> logging.New()        File-backed logger
//	       ├─────> history.Open()       Query history (SQLite)
//	       ├─────> quarry.NewClient()   Create HTTP client
//	       ├─────> state.NewStore()     Shared state container
//	       ├─────> StartSearcher()      Launch intent executor
//	       └─────> ui.Run()             Start TUI (blocks)
//
//	Searcher Loop:
//	┌───────────────────────────────────────────────┐
//	│ controller over search intent                 │
//	│  └─> intent change (new request id)           │
//	│       └─> client.Search()                     │
//	│            ├─> Dispatch(SearchFulfilled)      │
//	│            │    └─> history.Record()          │
//	│            └─> Dispatch(SearchRejected)       │
//	└───────────────────────────────────────────────┘
//
// # Searcher Behavior
//
// The searcher does not poll. It observes the store through a Controller
// whose derived view is the current search intent (request id, query text,
// window, filters); only a committed intent wakes it. Bursts coalesce to
// the newest intent, so typing-and-submitting quickly never queues stale
// searches. Outcomes are dispatched with the intent's request id and the
// reducer discards any that arrive after the intent has moved on.
//
// On startup the searcher fetches daemon health and index stats in
// parallel and publishes them for the status bar.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid
//   - API client initialization failure
//
// Recoverable errors (logged, execution continues):
//   - Individual search failures (surfaced in the UI via SearchRejected)
//   - History database unavailable (recent queries simply disappear)
//   - Warmup failures (the daemon may not be up yet)
//
// # Usage Example
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{}); err != nil {
//		log.Fatalf("winnow failed: %v", err)
//	}
package app
