package launches

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when the API has no record for a request.
var ErrNotFound = errors.New("launch not found")

// Source is the asynchronous data source the views render from. A nil
// result slice with a nil error means the lookup itself failed; zero matches
// are an empty slice.
type Source interface {
	SearchLaunches(ctx context.Context, query string) ([]LaunchSummary, error)
	GetLaunch(ctx context.Context, id string) (*LaunchDetail, error)
}

// Ensure Client implements Source at compile time.
var _ Source = (*Client)(nil)

// Client talks to the Launch Library 2 HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultBaseURL   = "https://lldev.thespacedevs.com/2.2.0/"
	DefaultTimeout   = 10 * time.Second
	defaultUserAgent = "liftoff/dev"
	searchMode       = "list"
)

// NewClient builds a Client for the API rooted at baseURL. A zero timeout
// uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		userAgent: defaultUserAgent,
	}, nil
}

// UserAgent returns the User-Agent sent for a liftoff build version.
func UserAgent(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return defaultUserAgent
	}
	return "liftoff/" + version
}

// SetVersion sets the build version reported in the User-Agent header.
func (c *Client) SetVersion(version string) {
	c.userAgent = UserAgent(version)
}

// SearchLaunches runs a free-text launch search. Results keep API order.
func (c *Client) SearchLaunches(ctx context.Context, query string) ([]LaunchSummary, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("search", query)
	values.Set("mode", searchMode)
	rel := &url.URL{Path: "launch/", RawQuery: values.Encode()}

	var payload searchResponse
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	out := make([]LaunchSummary, 0, len(payload.Results))
	for _, r := range payload.Results {
		out = append(out, r.summary())
	}
	return out, nil
}

// GetLaunch fetches a single launch by id.
func (c *Client) GetLaunch(ctx context.Context, id string) (*LaunchDetail, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("launch id required")
	}
	rel := &url.URL{Path: "launch/" + url.PathEscape(id) + "/"}

	var payload launchPayload
	if err := c.doURL(ctx, http.MethodGet, rel, &payload); err != nil {
		return nil, err
	}
	return payload.detail(), nil
}

// Ping checks that the API root answers. The body is not read.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.doURL(ctx, http.MethodGet, &url.URL{Path: "./"}, nil)
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

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("api %s: %w", rel.Path, ErrNotFound)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseBaseURL normalises the configured API root so relative endpoint paths
// resolve beneath it.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api url %q: missing host", raw)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
