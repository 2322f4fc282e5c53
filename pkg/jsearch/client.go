package jsearch

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

const (
	defaultBaseURL  = "https://jsearch.p.rapidapi.com"
	defaultNumPages = 1
)

// ErrRateLimited signals an HTTP 429/403 answer. Callers must be able to
// tell it apart from an empty result set.
var ErrRateLimited = errors.New("jsearch: rate limited")

// NewClient instantiates a JSearch API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" || cfg.APIHost == "" {
		return nil, fmt.Errorf("jsearch: api key and api host are required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	numPages := cfg.NumPages
	if numPages <= 0 {
		numPages = defaultNumPages
	}

	return &Client{
		apiKey:     cfg.APIKey,
		apiHost:    cfg.APIHost,
		baseURL:    baseURL,
		httpClient: httpClient,
		numPages:   numPages,
	}, nil
}

// SearchJobs runs a keyword search, optionally scoped to a free-text
// location. Returns ErrRateLimited on 429/403 so the caller can switch
// strategy instead of treating quota exhaustion as "no matches".
func (c *Client) SearchJobs(ctx context.Context, query, location string) ([]Posting, error) {
	if c == nil {
		return nil, fmt.Errorf("jsearch: client is nil")
	}

	what := query
	if location != "" {
		what = query + " in " + location
	}

	values := url.Values{}
	values.Set("query", what)
	values.Set("page", "1")
	values.Set("num_pages", strconv.Itoa(c.numPages))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+values.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("jsearch: API quota (%d): %w", resp.StatusCode, ErrRateLimited)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("jsearch: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("jsearch: decode response: %w", err)
	}

	return payload.Data, nil
}
