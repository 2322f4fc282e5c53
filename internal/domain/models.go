package domain

import "time"

// SourceQuality tags which tier of the provider waterfall produced a result.
type SourceQuality string

const (
	// QualityDeep marks results from the primary, quota-limited provider.
	QualityDeep SourceQuality = "deep"
	// QualityStandard marks results from the warehouse or any fallback provider.
	QualityStandard SourceQuality = "standard"
	// QualityNone is the zero value: every tier came back empty.
	QualityNone SourceQuality = ""
)

// Job is the canonical job posting every provider response is normalized into.
// Instances are built in one pass by an adapter and never mutated afterwards.
type Job struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	EmployerName    string              `json:"employer_name"`
	EmployerLogoURL string              `json:"employer_logo_url,omitempty"`
	Description     string              `json:"description,omitempty"`
	ApplyURL        string              `json:"apply_url"`
	City            string              `json:"city,omitempty"`
	Region          string              `json:"region,omitempty"`
	Country         string              `json:"country,omitempty"`
	PostedAt        time.Time           `json:"posted_at"`
	MinSalary       *int                `json:"min_salary,omitempty"`
	MaxSalary       *int                `json:"max_salary,omitempty"`
	Highlights      map[string][]string `json:"highlights,omitempty"`
	Source          string              `json:"source"`
}

// SearchOptions carry the optional location hints for a search call.
type SearchOptions struct {
	// Location is the caller-supplied free-text location hint.
	Location string
	// IPCity is an independently geo-detected city, used as a secondary hint.
	IPCity string
	// Region is the resolved country code consumed by region-scoped providers.
	// The orchestrator fills it in before the regional stage; callers leave it empty.
	Region string
}

// SearchResult is what the aggregation engine hands back to callers. An empty
// Jobs slice with QualityNone means every tier was exhausted; exhaustion is
// reported in-band, never as an error.
type SearchResult struct {
	Jobs          []Job         `json:"jobs"`
	SourceQuality SourceQuality `json:"source_quality,omitempty"`
}
