// Package jobicy fetches the Jobicy public remote-jobs feed. The feed takes
// no meaningful query parameter, so callers filter client-side.
package jobicy

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
	defaultBaseURL = "https://jobicy.com"
	defaultPages   = 2
	defaultCount   = 50
)

// Config defines feed client settings
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Pages      int
	Count      int
}

// Client pages the unauthenticated feed, paced so successive page fetches
// do not hammer the public endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	pages      int
	count      int
	limiter    *rate.Limiter
}

type feedResponse struct {
	Result struct {
		Jobs []Posting `json:"jobs"`
	} `json:"result"`
}

// Posting is one raw feed entry
type Posting struct {
	ID          json.Number `json:"id"`
	URL         string      `json:"url"`
	Title       string      `json:"jobTitle"`
	CompanyName string      `json:"companyName"`
	CompanyLogo string      `json:"companyLogo"`
	Geo         string      `json:"jobGeo"`
	Excerpt     string      `json:"jobExcerpt"`
	Description string      `json:"jobDescription"`
	PubDate     string      `json:"pubDate"`
	SalaryMin   float64     `json:"annualSalaryMin"`
	SalaryMax   float64     `json:"annualSalaryMax"`
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
	count := cfg.Count
	if count <= 0 {
		count = defaultCount
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		pages:      pages,
		count:      count,
		limiter:    rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
	}
}

// FetchJobs pages the feed and concatenates entries. A failed page after the
// first does not discard what was already collected.
func (c *Client) FetchJobs(ctx context.Context) ([]Posting, error) {
	if c == nil {
		return nil, fmt.Errorf("jobicy: client is nil")
	}

	var out []Posting
	for page := 1; page <= c.pages; page++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return out, fmt.Errorf("jobicy: %w", err)
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
	target := c.baseURL + "/api/v2/remote-jobs?count=" + strconv.Itoa(c.count) + "&page=" + strconv.Itoa(page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("jobicy: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jobicy: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("jobicy: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("jobicy: decode response: %w", err)
	}

	return payload.Result.Jobs, nil
}
