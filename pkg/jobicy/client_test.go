package jobicy

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
		if r.URL.Path != "/api/v2/remote-jobs" {
			t.Errorf("path = %q", r.URL.Path)
		}
		page := r.URL.Query().Get("page")
		pagesSeen = append(pagesSeen, page)

		fmt.Fprintf(w, `{"result": {"jobs": [
			{"id": %s00, "jobTitle": "Remote Go Dev p%s", "companyName": "Acme", "jobGeo": "Anywhere"}
		]}}`, page, page)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL, Pages: 2, Count: 10})

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
	if postings[0].ID.String() != "100" {
		t.Fatalf("id = %q", postings[0].ID)
	}
	if postings[0].Title != "Remote Go Dev p1" {
		t.Fatalf("title = %q", postings[0].Title)
	}
}

func TestFetchJobsKeepsEarlierPagesOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"result": {"jobs": [{"id": 1, "jobTitle": "Dev"}]}}`))
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

	client := NewClient(Config{BaseURL: srv.URL, Pages: 2})

	if _, err := client.FetchJobs(context.Background()); err == nil {
		t.Fatalf("expected error when the first page fails")
	}
}

func TestFetchJobsStopsOnEmptyPage(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(`{"result": {"jobs": []}}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{BaseURL: srv.URL, Pages: 5})

	postings, err := client.FetchJobs(context.Background())
	if err != nil {
		t.Fatalf("FetchJobs: %v", err)
	}
	if len(postings) != 0 {
		t.Fatalf("expected no postings, got %d", len(postings))
	}
	if requests != 1 {
		t.Fatalf("empty page must stop paging, saw %d requests", requests)
	}
}
