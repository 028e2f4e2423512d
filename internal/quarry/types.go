package quarry

import "time"

const quarryTimestampLayout = "2006-01-02 15:04:05"

// SearchRequest describes one search round-trip against an index.
type SearchRequest struct {
	Query     string              `json:"query"`
	Offset    int                 `json:"offset"`
	Limit     int                 `json:"limit"`
	Facets    []string            `json:"facets,omitempty"`
	Filters   map[string][]string `json:"filters,omitempty"`
	RequestID string              `json:"requestId,omitempty"`
}

// SearchResponse mirrors the payload returned by /api/indexes/{index}/search.
type SearchResponse struct {
	Hits       []Hit                   `json:"hits"`
	Total      int                     `json:"total"`
	Offset     int                     `json:"offset"`
	Limit      int                     `json:"limit"`
	DurationMS float64                 `json:"durationMs"`
	Facets     map[string][]FacetCount `json:"facets"`
	RequestID  string                  `json:"requestId"`
}

// Duration returns the reported search latency.
func (r SearchResponse) Duration() time.Duration {
	return time.Duration(r.DurationMS * float64(time.Millisecond))
}

// Hit is a single matching document in transport-friendly form.
type Hit struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Snippet   string            `json:"snippet"`
	Score     float64           `json:"score"`
	Fields    map[string]string `json:"fields"`
	IndexedAt string            `json:"indexedAt"`
}

// ParsedIndexedAt returns the indexing timestamp as time.Time when possible.
func (h Hit) ParsedIndexedAt() time.Time {
	return parseTime(h.IndexedAt)
}

// FacetCount is one value bucket inside a facet field.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SuggestResponse mirrors /api/indexes/{index}/suggest.
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// IndexStats mirrors /api/indexes/{index}/stats.
type IndexStats struct {
	Name      string `json:"name"`
	Documents int    `json:"documents"`
	UpdatedAt string `json:"updatedAt"`
}

// ParsedUpdatedAt returns the last commit timestamp.
func (s IndexStats) ParsedUpdatedAt() time.Time {
	return parseTime(s.UpdatedAt)
}

// HealthResponse mirrors /api/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Healthy reports whether the daemon considers itself serviceable.
func (h HealthResponse) Healthy() bool {
	return h.Status == "ok"
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(quarryTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
