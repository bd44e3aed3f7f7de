// Package api is the HTTP client for the search backend's /api contract.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"glimpse/internal/domain"
)

// StatusError is returned for any non-2xx response. It is rendered at the
// call site and never retried.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Body)
}

// Client talks to the backend. All methods take a context; there is no
// request cancellation beyond it and no automatic retry.
type Client struct {
	base   string
	http   *http.Client
	log    *zap.SugaredLogger
}

// New creates a client for the given base URL, e.g. "http://localhost:3000".
func New(base string, log *zap.SugaredLogger) *Client {
	return &Client{
		base: base,
		http: &http.Client{Timeout: 30 * time.Second},
		log:  log,
	}
}

// Search performs a web search.
func (c *Client) Search(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error) {
	var out SearchResponse
	if err := c.getJSON(ctx, "/api/search", searchValues(query, opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchImages performs an image search.
func (c *Client) SearchImages(ctx context.Context, query string, opts SearchOptions) (*ImageSearchResponse, error) {
	var out ImageSearchResponse
	if err := c.getJSON(ctx, "/api/search/images", searchValues(query, opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReverseImageSearch searches by image, either by URL or base64 payload.
func (c *Client) ReverseImageSearch(ctx context.Context, req ReverseImageRequest) (*ImageSearchResponse, error) {
	var out ImageSearchResponse
	if err := c.postJSON(ctx, "/api/search/images/reverse", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchVideos performs a video search.
func (c *Client) SearchVideos(ctx context.Context, query string, opts SearchOptions) (*VideoSearchResponse, error) {
	var out VideoSearchResponse
	if err := c.getJSON(ctx, "/api/search/videos", searchValues(query, opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchNews performs a news search.
func (c *Client) SearchNews(ctx context.Context, query string, opts SearchOptions) (*NewsSearchResponse, error) {
	var out NewsSearchResponse
	if err := c.getJSON(ctx, "/api/search/news", searchValues(query, opts), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Suggest fetches query suggestions.
func (c *Client) Suggest(ctx context.Context, query string) ([]string, error) {
	v := url.Values{}
	setIfNotEmpty(v, "q", query)
	var out SuggestResponse
	if err := c.getJSON(ctx, "/api/suggest", v, &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

// Trending fetches trending queries.
func (c *Client) Trending(ctx context.Context) ([]string, error) {
	var out SuggestResponse
	if err := c.getJSON(ctx, "/api/suggest/trending", nil, &out); err != nil {
		return nil, err
	}
	return out.Suggestions, nil
}

// Bangs fetches the bang directory.
func (c *Client) Bangs(ctx context.Context) ([]domain.Bang, error) {
	var out []domain.Bang
	if err := c.getJSON(ctx, "/api/bangs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseBang resolves a bang query into its redirect URL.
func (c *Client) ParseBang(ctx context.Context, query string) (*BangParseResponse, error) {
	v := url.Values{}
	setIfNotEmpty(v, "q", query)
	var out BangParseResponse
	if err := c.getJSON(ctx, "/api/bangs/parse", v, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Settings fetches the backend settings.
func (c *Client) Settings(ctx context.Context) (*domain.Settings, error) {
	var out domain.Settings
	if err := c.getJSON(ctx, "/api/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings replaces the backend settings.
func (c *Client) UpdateSettings(ctx context.Context, s domain.Settings) error {
	return c.do(ctx, http.MethodPut, "/api/settings", nil, s, nil)
}

// History lists recorded searches.
func (c *Client) History(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	v := url.Values{}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	var out []domain.HistoryEntry
	if err := c.getJSON(ctx, "/api/history", v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecordHistory records a search on the backend.
func (c *Client) RecordHistory(ctx context.Context, query string, results int) error {
	body := map[string]any{"query": query, "results": results}
	return c.do(ctx, http.MethodPost, "/api/history", nil, body, nil)
}

// DeleteHistory removes a single history entry.
func (c *Client) DeleteHistory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/history/"+url.PathEscape(id), nil, nil, nil)
}

// ClearHistory removes all history entries.
func (c *Client) ClearHistory(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/history", nil, nil, nil)
}

// Preferences lists the per-domain ranking preferences.
func (c *Client) Preferences(ctx context.Context) ([]domain.Preference, error) {
	var out []domain.Preference
	if err := c.getJSON(ctx, "/api/preferences", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetPreference creates or updates a per-domain preference.
func (c *Client) SetPreference(ctx context.Context, p domain.Preference) error {
	return c.do(ctx, http.MethodPost, "/api/preferences", nil, p, nil)
}

// DeletePreference removes the preference for a domain.
func (c *Client) DeletePreference(ctx context.Context, domainName string) error {
	return c.do(ctx, http.MethodDelete, "/api/preferences/"+url.PathEscape(domainName), nil, nil, nil)
}

// Lenses lists the search lenses.
func (c *Client) Lenses(ctx context.Context) ([]domain.Lens, error) {
	var out []domain.Lens
	if err := c.getJSON(ctx, "/api/lenses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateLens creates a lens.
func (c *Client) CreateLens(ctx context.Context, l domain.Lens) error {
	return c.do(ctx, http.MethodPost, "/api/lenses", nil, l, nil)
}

// DeleteLens removes a lens.
func (c *Client) DeleteLens(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/lenses/"+url.PathEscape(id), nil, nil, nil)
}

// searchValues builds the shared search query parameters. Empty values
// are omitted, never serialized literally.
func searchValues(query string, opts SearchOptions) url.Values {
	v := url.Values{}
	setIfNotEmpty(v, "q", query)
	if opts.Page > 1 {
		v.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(opts.PerPage))
	}
	for name, val := range opts.Filters {
		setIfNotEmpty(v, name, val)
	}
	return v
}

func setIfNotEmpty(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func (c *Client) getJSON(ctx context.Context, path string, v url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, v, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, v url.Values, body, out any) error {
	u := c.base + path
	if len(v) > 0 {
		u += "?" + v.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debugw("request failed", "id", requestID, "method", method, "path", path, "err", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debugw("request completed",
		"id", requestID, "method", method, "path", path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Status: resp.StatusCode, Body: string(bytes.TrimSpace(text))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
