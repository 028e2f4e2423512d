package quarry

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultEndpoint {
		t.Fatalf("host = %q, want %q", u.Host, defaultEndpoint)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_SearchSendsBodyAndDecodesResponse(t *testing.T) {
	t.Parallel()

	var gotBody SearchRequest
	var gotUserAgent, gotAuth, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/indexes/products/search":
			if r.Method != http.MethodPost {
				t.Errorf("search method = %s, want POST", r.Method)
			}
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_ = json.NewEncoder(w).Encode(SearchResponse{
				Hits:       []Hit{{ID: "doc-1", Title: "Wool Blanket", Score: 1.5}},
				Total:      42,
				Offset:     0,
				Limit:      25,
				DurationMS: 12.5,
				Facets: map[string][]FacetCount{
					"brand": {{Value: "acme", Count: 7}},
				},
				RequestID: "req-1",
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, WithAPIKey("sekrit"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	resp, err := c.Search(ctx, "products", SearchRequest{
		Query:     "wool blanket",
		Offset:    0,
		Limit:     25,
		Facets:    []string{"brand"},
		Filters:   map[string][]string{"color": {"red"}},
		RequestID: "req-1",
	})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if resp.Total != 42 || len(resp.Hits) != 1 || resp.Hits[0].ID != "doc-1" {
		t.Fatalf("Search payload = %#v, want total=42 one hit doc-1", resp)
	}
	if got := resp.Facets["brand"]; len(got) != 1 || got[0].Count != 7 {
		t.Fatalf("Search facets = %#v, want brand acme=7", resp.Facets)
	}
	if resp.Duration() != 12500*time.Microsecond {
		t.Fatalf("Duration = %v, want 12.5ms", resp.Duration())
	}

	if gotBody.Query != "wool blanket" || gotBody.Limit != 25 {
		t.Fatalf("request body = %#v, want query/limit preserved", gotBody)
	}
	if len(gotBody.Filters["color"]) != 1 || gotBody.Filters["color"][0] != "red" {
		t.Fatalf("request filters = %#v, want color=red", gotBody.Filters)
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
	if gotAuth != "Bearer sekrit" {
		t.Fatalf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestClient_SuggestAndStats(t *testing.T) {
	t.Parallel()

	var gotSuggestQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/indexes/products/suggest":
			gotSuggestQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(SuggestResponse{Suggestions: []string{"wool", "wool blanket"}})
		case "/api/indexes/products/stats":
			_ = json.NewEncoder(w).Encode(IndexStats{Name: "products", Documents: 1234})
		case "/api/health":
			_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Version: "0.9.2"})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	suggestions, err := c.Suggest(ctx, "products", "woo", 5)
	if err != nil {
		t.Fatalf("Suggest returned error: %v", err)
	}
	if len(suggestions) != 2 || suggestions[1] != "wool blanket" {
		t.Fatalf("Suggest = %#v, want two completions", suggestions)
	}
	if gotSuggestQuery.Get("q") != "woo" || gotSuggestQuery.Get("limit") != "5" {
		t.Fatalf("suggest query = %v, want q=woo limit=5", gotSuggestQuery)
	}

	stats, err := c.FetchStats(ctx, "products")
	if err != nil {
		t.Fatalf("FetchStats returned error: %v", err)
	}
	if stats.Documents != 1234 {
		t.Fatalf("FetchStats documents = %d, want 1234", stats.Documents)
	}

	health, err := c.FetchHealth(ctx)
	if err != nil {
		t.Fatalf("FetchHealth returned error: %v", err)
	}
	if !health.Healthy() {
		t.Fatalf("Healthy() = false, want true for status ok")
	}
}

func TestClient_ErrorStatusIsWrapped(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.Search(context.Background(), "products", SearchRequest{Query: "x"})
	if err == nil {
		t.Fatal("Search returned nil error for 500 response")
	}

	_, err = c.Search(context.Background(), "", SearchRequest{})
	if err == nil {
		t.Fatal("Search returned nil error for empty index")
	}
}

func TestParseTime_AcceptsKnownLayouts(t *testing.T) {
	if got := parseTime(""); !got.IsZero() {
		t.Fatalf("parseTime empty = %v, want zero", got)
	}
	if got := parseTime("2026-08-14T10:30:00Z"); got.IsZero() {
		t.Fatal("parseTime RFC3339 = zero, want parsed")
	}
	if got := parseTime("2026-08-14 10:30:00"); got.IsZero() {
		t.Fatal("parseTime local layout = zero, want parsed")
	}
	if got := parseTime("not a time"); !got.IsZero() {
		t.Fatalf("parseTime garbage = %v, want zero", got)
	}
}
