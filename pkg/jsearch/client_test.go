package jsearch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{
		APIKey:  "test-key",
		APIHost: "jsearch.p.rapidapi.com",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient(Config{APIHost: "host"}); err == nil {
		t.Fatalf("expected error without api key")
	}
	if _, err := NewClient(Config{APIKey: "key"}); err == nil {
		t.Fatalf("expected error without api host")
	}
}

func TestSearchJobs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("X-RapidAPI-Key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}
		if got := r.Header.Get("X-RapidAPI-Host"); got != "jsearch.p.rapidapi.com" {
			t.Errorf("api host header = %q", got)
		}
		if got := r.URL.Query().Get("query"); got != "golang developer in Berlin" {
			t.Errorf("query param = %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"data": [
				{
					"job_id": 12345,
					"job_title": "Golang Developer",
					"employer_name": "Acme",
					"job_apply_link": "https://example.com/apply",
					"job_city": "Berlin",
					"job_country": "DE",
					"job_posted_at_datetime_utc": "2026-08-01T08:00:00Z",
					"job_min_salary": 60000,
					"job_max_salary": "not disclosed",
					"job_highlights": {"Qualifications": ["Go", "Kubernetes"]}
				}
			]
		}`))
	})

	postings, err := client.SearchJobs(context.Background(), "golang developer", "Berlin")
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(postings) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(postings))
	}

	p := postings[0]
	if p.JobID != "12345" {
		t.Fatalf("numeric job_id should decode as string, got %q", p.JobID)
	}
	if p.Title != "Golang Developer" || p.EmployerName != "Acme" {
		t.Fatalf("unexpected posting %+v", p)
	}
	if p.MinSalary != 60000 {
		t.Fatalf("min salary = %v", p.MinSalary)
	}
	if p.MaxSalary != 0 {
		t.Fatalf("string salary must decode to zero, got %v", p.MaxSalary)
	}
	if len(p.Highlights["Qualifications"]) != 2 {
		t.Fatalf("highlights lost: %+v", p.Highlights)
	}
}

func TestSearchJobsWithoutLocation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "golang developer" {
			t.Errorf("query param = %q", got)
		}
		_, _ = w.Write([]byte(`{"status": "OK", "data": []}`))
	})

	postings, err := client.SearchJobs(context.Background(), "golang developer", "")
	if err != nil {
		t.Fatalf("SearchJobs: %v", err)
	}
	if len(postings) != 0 {
		t.Fatalf("expected no postings, got %d", len(postings))
	}
}

func TestSearchJobsRateLimited(t *testing.T) {
	for _, code := range []int{http.StatusTooManyRequests, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(code)
		})

		_, err := client.SearchJobs(context.Background(), "golang", "")
		if !errors.Is(err, ErrRateLimited) {
			t.Fatalf("status %d: expected ErrRateLimited, got %v", code, err)
		}
	}
}

func TestSearchJobsServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.SearchJobs(context.Background(), "golang", "")
	if err == nil {
		t.Fatalf("expected error on 500")
	}
	if errors.Is(err, ErrRateLimited) {
		t.Fatalf("500 must not look like rate limiting: %v", err)
	}
}
