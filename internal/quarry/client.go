package quarry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SearchFetcher defines the interface for querying the quarry daemon.
// This interface is implemented by *Client and can be used for testing.
type SearchFetcher interface {
	Search(ctx context.Context, index string, req SearchRequest) (*SearchResponse, error)
	Suggest(ctx context.Context, index, prefix string, limit int) ([]string, error)
	FetchStats(ctx context.Context, index string) (*IndexStats, error)
	FetchHealth(ctx context.Context) (*HealthResponse, error)
}

// Ensure Client implements SearchFetcher at compile time.
var _ SearchFetcher = (*Client)(nil)

// Client talks to the quarry HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	apiKey    string
}

const (
	defaultEndpoint  = "127.0.0.1:7581"
	defaultUserAgent = "winnow/0.1"
	requestTimeout   = 5 * time.Second
)

// Option customizes a Client.
type Option func(*Client)

// WithAPIKey attaches a bearer token to every request.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = strings.TrimSpace(key)
	}
}

// NewClient builds a Client using the provided endpoint host:port value.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(endpoint)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Search executes a search request against the named index.
func (c *Client) Search(ctx context.Context, index string, req SearchRequest) (*SearchResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(index) == "" {
		return nil, fmt.Errorf("index name required")
	}
	rel := &url.URL{Path: "/api/indexes/" + index + "/search"}
	var payload SearchResponse
	if err := c.doJSON(ctx, http.MethodPost, rel, req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Suggest retrieves query completions for a prefix.
func (c *Client) Suggest(ctx context.Context, index, prefix string, limit int) ([]string, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(index) == "" {
		return nil, fmt.Errorf("index name required")
	}
	values := url.Values{}
	values.Set("q", prefix)
	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}
	rel := &url.URL{Path: "/api/indexes/" + index + "/suggest", RawQuery: values.Encode()}
	var payload SuggestResponse
	if err := c.doJSON(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Suggestions, nil
}

// FetchStats retrieves document counts and commit times for an index.
func (c *Client) FetchStats(ctx context.Context, index string) (*IndexStats, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if strings.TrimSpace(index) == "" {
		return nil, fmt.Errorf("index name required")
	}
	rel := &url.URL{Path: "/api/indexes/" + index + "/stats"}
	var payload IndexStats
	if err := c.doJSON(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchHealth retrieves daemon liveness information.
func (c *Client) FetchHealth(ctx context.Context) (*HealthResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: "/api/health"}
	var payload HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, rel, nil, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) doJSON(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = defaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
