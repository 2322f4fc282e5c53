package arbeitnow

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchJobsPagesFeed(t *testing.T) {
	var pagesSeen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/job-board-api" {
			t.Errorf("path = %q", r.URL.Path)
		}
		page := r.URL.Query().Get("page")
		pagesSeen = append(pagesSeen, page)

		fmt.Fprintf(w, `{"data": [
			{
				"slug": "go-dev-p%s",
				"company_name": "Acme GmbH",
				"title": "Go Developer",
				"remote": true,
				"url": "https://example.com/go-dev-p%s",
				"location": "Munich",
				"created_at": 1754000000
			}
		]}`, page, page)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL, Pages: 2})

	postings, err := client.FetchJobs(context.Background())
	if err != nil {
		t.Fatalf("FetchJobs: %v", err)
	}
	if len(postings) != 2 {
		t.Fatalf("expected one posting per page, got %d", len(postings))
	}
	if len(pagesSeen) != 2 || pagesSeen[0] != "1" || pagesSeen[1] != "2" {
		t.Fatalf("pages fetched = %v", pagesSeen)
	}
	if postings[0].Slug != "go-dev-p1" || postings[0].CreatedAt != 1754000000 {
		t.Fatalf("unexpected posting %+v", postings[0])
	}
}

func TestFetchJobsKeepsEarlierPagesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"data": [{"slug": "a", "title": "Dev", "company_name": "Acme"}]}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL, Pages: 3})

	postings, err := client.FetchJobs(context.Background())
	if err != nil {
		t.Fatalf("a later page failure must not error: %v", err)
	}
	if len(postings) != 1 {
		t.Fatalf("expected page 1 results kept, got %d", len(postings))
	}
}

func TestFetchJobsFirstPageFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL})

	if _, err := client.FetchJobs(context.Background()); err == nil {
		t.Fatalf("expected error when the first page fails")
	}
}
