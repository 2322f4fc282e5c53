package job

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/careerpath-labs/jobengine/internal/domain"
)

// Defaults substituted when a provider omits a required field.
const (
	DefaultTitle    = "Job"
	DefaultEmployer = "Unknown"
	DefaultApplyURL = "#"
)

// Finalize enforces the canonical-job invariants on an adapter-built job:
// required strings fall back to defaults, a missing posted-at becomes the
// fetch time, reversed salary bounds are swapped, and a missing id is
// generated under the source namespace. Adapters run every job through this
// exactly once; it never fails.
func Finalize(j domain.Job, source string, now time.Time) domain.Job {
	j.Source = source

	if strings.TrimSpace(j.ID) == "" {
		j.ID = source + ":" + uuid.NewString()
	}
	if strings.TrimSpace(j.Title) == "" {
		j.Title = DefaultTitle
	}
	if strings.TrimSpace(j.EmployerName) == "" {
		j.EmployerName = DefaultEmployer
	}
	if strings.TrimSpace(j.ApplyURL) == "" {
		j.ApplyURL = DefaultApplyURL
	}
	if j.PostedAt.IsZero() {
		j.PostedAt = now.UTC()
	} else {
		j.PostedAt = j.PostedAt.UTC()
	}
	if j.MinSalary != nil && j.MaxSalary != nil && *j.MinSalary > *j.MaxSalary {
		j.MinSalary, j.MaxSalary = j.MaxSalary, j.MinSalary
	}

	return j
}

// NamespaceID prefixes a raw provider identifier with its source tag so ids
// stay unique across providers inside one result set. Empty raw ids are left
// for Finalize to generate.
func NamespaceID(source, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return source + ":" + raw
}

// Salary converts a provider salary figure into a canonical bound. Values
// that are not positive numbers are treated as absent.
func Salary(v float64) *int {
	if v <= 0 {
		return nil
	}
	n := int(v)
	return &n
}

// ParseTimestamp tries the timestamp layouts seen across providers and falls
// back to zero when none apply, leaving the default to Finalize.
func ParseTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}

	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC()
		}
	}
	return time.Time{}
}

// MatchesQuery reports whether any of the fields match the query, either as
// a whole case-insensitive substring or on any whitespace-split token. It is
// shared by the warehouse read path and the firehose adapters, whose feeds
// carry no query-side filtering.
func MatchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	lowered := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		lowered = append(lowered, strings.ToLower(f))
	}

	for _, f := range lowered {
		if strings.Contains(f, query) {
			return true
		}
	}
	for _, token := range strings.Fields(query) {
		for _, f := range lowered {
			if strings.Contains(f, token) {
				return true
			}
		}
	}
	return false
}
