package empresas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Searcher is the interface the UI layer consumes. Implemented by *Client;
// tests substitute their own.
type Searcher interface {
	Search(ctx context.Context, query SearchQuery) (SearchResult, error)
}

var _ Searcher = (*Client)(nil)

// Client talks to the company registry HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultBaseURL   = "http://localhost:8000"
	defaultUserAgent = "balcao/0.1"
	requestTimeout   = 15 * time.Second

	searchPath = "/api/v1/empresas/"
)

// NewClient builds a Client for the given base URL. A bare host:port is
// accepted and normalized to http.
func NewClient(base string) (*Client, error) {
	parsed, err := parseBaseURL(base)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: parsed,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Search runs one paginated query and returns the matching page. A
// well-formed envelope with missing fields is not an error: it decodes to an
// empty page with a zero total.
func (c *Client) Search(ctx context.Context, query SearchQuery) (SearchResult, error) {
	if c == nil {
		return SearchResult{}, fmt.Errorf("client is nil")
	}
	rel := &url.URL{Path: searchPath, RawQuery: query.Values().Encode()}
	var payload searchEnvelope
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return SearchResult{}, err
	}
	return SearchResult{
		Empresas: payload.Message.Resposta,
		Total:    payload.Message.TotalRegistros,
	}, nil
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
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

func parseBaseURL(base string) (*url.URL, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = defaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base %q: %w", base, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
