// Package rawg wraps the third-party game catalog HTTP API. The client
// keeps no state beyond its configuration and is consumed through small
// per-service interfaces so business logic never touches the network in
// tests.
package rawg

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Config is injected at startup; the client never reads the process
// environment itself.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// GameSummary is one search/filter result row.
type GameSummary struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Released        string `json:"released"`
	BackgroundImage string `json:"background_image"`
}

// GameDetail is the full record returned by the per-id endpoint.
type GameDetail struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Released        string `json:"released"`
	BackgroundImage string `json:"background_image"`
}

type listResponse struct {
	Count   int           `json:"count"`
	Results []GameSummary `json:"results"`
}

// FilterParams narrows a catalog query. Zero fields are omitted from the
// outbound request.
type FilterParams struct {
	ReleaseDate string
	Platform    int64
	Genre       int64
}

// UpstreamError reports a non-2xx catalog response. Status code and
// reason phrase pass through to the caller unchanged.
type UpstreamError struct {
	StatusCode int
	Reason     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("catalog api: %d %s", e.StatusCode, e.Reason)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.StatusCode == http.StatusNotFound
}

type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

// Search queries the catalog by name.
func (c *Client) Search(ctx context.Context, query string) ([]GameSummary, error) {
	params := url.Values{}
	params.Set("search", query)
	return c.list(ctx, params)
}

// Filter queries the catalog by release date, platform and/or genre.
func (c *Client) Filter(ctx context.Context, p FilterParams) ([]GameSummary, error) {
	params := url.Values{}
	if p.ReleaseDate != "" {
		params.Set("dates", p.ReleaseDate)
	}
	if p.Platform != 0 {
		params.Set("platforms", strconv.FormatInt(p.Platform, 10))
	}
	if p.Genre != 0 {
		params.Set("genres", strconv.FormatInt(p.Genre, 10))
	}
	return c.list(ctx, params)
}

// GetByID fetches the detail record for one external id. A missing id
// surfaces as an UpstreamError with status 404 (see IsNotFound).
func (c *Client) GetByID(ctx context.Context, externalID int64) (*GameDetail, error) {
	path := fmt.Sprintf("/games/%d", externalID)
	body, err := c.get(ctx, path, url.Values{})
	if err != nil {
		return nil, err
	}

	var detail GameDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("decode game detail: %w", err)
	}
	return &detail, nil
}

func (c *Client) list(ctx context.Context, params url.Values) ([]GameSummary, error) {
	body, err := c.get(ctx, "/games", params)
	if err != nil {
		return nil, err
	}

	var list listResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode game list: %w", err)
	}
	return list.Results, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("key", c.cfg.APIKey)

	u := strings.TrimSuffix(c.cfg.BaseURL, "/") + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("catalog api response: %w", err)
	}
	return body, nil
}

func reasonPhrase(resp *http.Response) string {
	// resp.Status is "404 Not Found"; strip the leading code.
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
