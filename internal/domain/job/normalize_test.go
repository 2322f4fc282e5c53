package job

import (
	"strings"
	"testing"
	"time"

	"github.com/careerpath-labs/jobengine/internal/domain"
)

func TestFinalizeAppliesDefaults(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	got := Finalize(domain.Job{}, "jsearch", now)

	if got.ID == "" {
		t.Fatalf("expected generated id")
	}
	if !strings.HasPrefix(got.ID, "jsearch:") {
		t.Fatalf("generated id should carry the source namespace, got %q", got.ID)
	}
	if got.Title != DefaultTitle {
		t.Fatalf("title default = %q, want %q", got.Title, DefaultTitle)
	}
	if got.EmployerName != DefaultEmployer {
		t.Fatalf("employer default = %q, want %q", got.EmployerName, DefaultEmployer)
	}
	if got.ApplyURL != DefaultApplyURL {
		t.Fatalf("apply url default = %q, want %q", got.ApplyURL, DefaultApplyURL)
	}
	if !got.PostedAt.Equal(now) {
		t.Fatalf("posted at should default to fetch time, got %v", got.PostedAt)
	}
	if got.Source != "jsearch" {
		t.Fatalf("source = %q", got.Source)
	}
}

func TestFinalizeKeepsProvidedFields(t *testing.T) {
	now := time.Now()
	posted := time.Date(2026, 7, 30, 9, 30, 0, 0, time.FixedZone("CET", 3600))

	in := domain.Job{
		ID:           "adzuna:42",
		Title:        "Platform Engineer",
		EmployerName: "Acme",
		ApplyURL:     "https://example.com/apply",
		PostedAt:     posted,
	}

	got := Finalize(in, "adzuna", now)

	if got.ID != "adzuna:42" || got.Title != "Platform Engineer" || got.EmployerName != "Acme" {
		t.Fatalf("provided fields must survive: %+v", got)
	}
	if got.PostedAt.Location() != time.UTC {
		t.Fatalf("posted at must be normalized to UTC, got %v", got.PostedAt.Location())
	}
	if !got.PostedAt.Equal(posted) {
		t.Fatalf("posted at instant changed: %v != %v", got.PostedAt, posted)
	}
}

func TestFinalizeSwapsReversedSalaryBounds(t *testing.T) {
	low, high := 50000, 90000

	got := Finalize(domain.Job{MinSalary: &high, MaxSalary: &low}, "adzuna", time.Now())

	if got.MinSalary == nil || got.MaxSalary == nil {
		t.Fatalf("both bounds must survive the swap")
	}
	if *got.MinSalary != low || *got.MaxSalary != high {
		t.Fatalf("bounds not reordered: min=%d max=%d", *got.MinSalary, *got.MaxSalary)
	}
}

func TestFinalizeLeavesOrderedSalaryAlone(t *testing.T) {
	low, high := 50000, 90000

	got := Finalize(domain.Job{MinSalary: &low, MaxSalary: &high}, "adzuna", time.Now())

	if *got.MinSalary != low || *got.MaxSalary != high {
		t.Fatalf("ordered bounds changed: min=%d max=%d", *got.MinSalary, *got.MaxSalary)
	}
}

func TestSalaryRejectsNonPositive(t *testing.T) {
	if Salary(0) != nil {
		t.Fatalf("zero salary should be absent")
	}
	if Salary(-10) != nil {
		t.Fatalf("negative salary should be absent")
	}
	if got := Salary(75000.9); got == nil || *got != 75000 {
		t.Fatalf("positive salary mapped wrong: %v", got)
	}
}

func TestNamespaceID(t *testing.T) {
	if got := NamespaceID("jobicy", "123"); got != "jobicy:123" {
		t.Fatalf("NamespaceID = %q", got)
	}
	if got := NamespaceID("jobicy", "  "); got != "" {
		t.Fatalf("blank raw id should stay empty for generation, got %q", got)
	}
}

func TestParseTimestampLayouts(t *testing.T) {
	cases := []string{
		"2026-07-30T10:00:00.000Z",
		"2026-07-30T10:00:00Z",
		"2026-07-30T10:00:00",
		"2026-07-30 10:00:00",
		"2026-07-30",
	}

	for _, value := range cases {
		ts := ParseTimestamp(value)
		if ts.IsZero() {
			t.Fatalf("expected parse success for %q", value)
		}
		if ts.Location() != time.UTC {
			t.Fatalf("parsed time not UTC for %q", value)
		}
	}

	if !ParseTimestamp("not a date").IsZero() {
		t.Fatalf("garbage input must parse to zero")
	}
	if !ParseTimestamp("").IsZero() {
		t.Fatalf("empty input must parse to zero")
	}
}

func TestMatchesQuery(t *testing.T) {
	cases := []struct {
		query  string
		fields []string
		want   bool
	}{
		{"software engineer", []string{"Senior Software Engineer", "Acme"}, true},
		{"golang berlin", []string{"Backend Developer (Golang)", "Acme", "Berlin"}, true},
		{"golang", []string{"Data Analyst", "Acme", "Paris"}, false},
		{"", []string{"anything"}, true},
		{"ACME", []string{"engineer", "acme gmbh"}, true},
	}

	for _, tc := range cases {
		if got := MatchesQuery(tc.query, tc.fields...); got != tc.want {
			t.Fatalf("MatchesQuery(%q, %v) = %v, want %v", tc.query, tc.fields, got, tc.want)
		}
	}
}
