// Package quarry provides an HTTP client for the quarry search daemon API.
//
// # Overview
//
// This package defines the API client for communicating with a quarry search
// daemon. It handles HTTP communication, JSON serialization, and type-safe
// representation of search requests, hits, facet counts, and index stats.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the quarry API schema
//
// # Client Usage
//
// Create a client using the endpoint from configuration:
//
//	client, err := quarry.NewClient("127.0.0.1:7581", quarry.WithAPIKey(key))
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	resp, err := client.Search(ctx, "products", quarry.SearchRequest{
//		Query:  "wool blanket",
//		Limit:  25,
//		Facets: []string{"brand", "color"},
//	})
//
// # API Endpoints
//
//   - POST /api/indexes/{index}/search: Query execution with facets and filters
//   - GET  /api/indexes/{index}/suggest: Prefix completions
//   - GET  /api/indexes/{index}/stats: Document counts and commit times
//   - GET  /api/health: Daemon liveness and version
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json and User-Agent: winnow/0.1 headers
//   - Attach Authorization: Bearer when an API key is configured
//   - Have a 5-second timeout (configurable via http.Client)
//   - Return wrapped errors with context about what failed
//
// # Error Handling
//
// The client distinguishes between several error types:
//
//   - Client initialization errors: Invalid endpoint format
//   - Network errors: Connection refused, timeout, DNS failure
//   - HTTP errors: 4xx/5xx status codes from the API
//   - Deserialization errors: Malformed JSON responses
//
// All errors are wrapped with descriptive context using fmt.Errorf.
//
// Example error messages:
//   - "execute request: dial tcp: connection refused"
//   - "api /api/indexes/products/search returned status 500"
//   - "decode response: unexpected end of JSON input"
//
// # Testing
//
// The SearchFetcher interface abstracts the client for tests. A compile-time
// assertion ensures *Client satisfies it. Unit tests use httptest servers to
// validate request shaping and response decoding without a live daemon.
package quarry
