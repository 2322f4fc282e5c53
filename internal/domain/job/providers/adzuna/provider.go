package adzuna

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/careerpath-labs/jobengine/internal/domain"
	jobdomain "github.com/careerpath-labs/jobengine/internal/domain/job"
	"github.com/careerpath-labs/jobengine/pkg/adzuna"
)

// Source tags every job produced by this adapter.
const Source = "adzuna"

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, query, country string) ([]adzuna.Posting, error)
}

// Provider implements job.Provider using the Adzuna API, scoped to the
// country code the location resolver picked.
type Provider struct {
	client searchClient
}

// NewProvider builds an Adzuna provider. A nil client yields a disabled
// provider that deterministically returns no results.
func NewProvider(client searchClient) *Provider {
	return &Provider{client: client}
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return Source
}

// Search queries Adzuna and returns normalized jobs
func (p *Provider) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Job, error) {
	if p == nil || p.client == nil {
		return nil, nil
	}

	country := opts.Region
	if country == "" {
		country = jobdomain.DefaultRegion
	}

	postings, err := p.client.SearchJobs(ctx, query, country)
	if err != nil {
		return nil, fmt.Errorf("adzuna provider: %w", err)
	}

	now := time.Now()
	out := make([]domain.Job, 0, len(postings))
	for _, posting := range postings {
		out = append(out, mapPosting(posting, country, now))
	}

	return out, nil
}

func mapPosting(posting adzuna.Posting, country string, now time.Time) domain.Job {
	j := domain.Job{
		ID:           jobdomain.NamespaceID(Source, posting.ID),
		Title:        posting.Title,
		EmployerName: posting.Company.DisplayName,
		Description:  posting.Description,
		ApplyURL:     posting.RedirectURL,
		City:         posting.Location.City(),
		Region:       posting.Location.Region(),
		Country:      strings.ToUpper(country),
		PostedAt:     jobdomain.ParseTimestamp(posting.Created),
		MinSalary:    jobdomain.Salary(posting.SalaryMin),
		MaxSalary:    jobdomain.Salary(posting.SalaryMax),
	}

	return jobdomain.Finalize(j, Source, now)
}

var _ jobdomain.Provider = (*Provider)(nil)
