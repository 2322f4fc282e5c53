// Package arbeitnow fetches the Arbeitnow public job-board feed. The feed is
// unfiltered; callers filter client-side.
package arbeitnow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://www.arbeitnow.com"
	defaultPages   = 2
)

// Config defines feed client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Pages      int
}

// Client pages the unauthenticated feed
type Client struct {
	baseURL    string
	httpClient *http.Client
	pages      int
	limiter    *rate.Limiter
}

type feedResponse struct {
	Data []Posting `json:"data"`
}

// Posting is one raw feed entry
type Posting struct {
	Slug        string `json:"slug"`
	CompanyName string `json:"company_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Remote      bool   `json:"remote"`
	URL         string `json:"url"`
	Location    string `json:"location"`
	CreatedAt   int64  `json:"created_at"`
}

// NewClient builds a feed client
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	pages := cfg.Pages
	if pages <= 0 {
		pages = defaultPages
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		pages:      pages,
		limiter:    rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// FetchJobs pages the feed and concatenates entries. A failed page after the
// first does not discard what was already collected.
func (c *Client) FetchJobs(ctx context.Context) ([]Posting, error) {
	if c == nil {
		return nil, fmt.Errorf("arbeitnow: client is nil")
	}

	var out []Posting
	for page := 1; page <= c.pages; page++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return out, fmt.Errorf("arbeitnow: %w", err)
		}

		postings, err := c.fetchPage(ctx, page)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			return out, nil
		}
		if len(postings) == 0 {
			break
		}
		out = append(out, postings...)
	}

	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]Posting, error) {
	target := c.baseURL + "/api/job-board-api?page=" + strconv.Itoa(page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("arbeitnow: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("arbeitnow: decode response: %w", err)
	}

	return payload.Data, nil
}
