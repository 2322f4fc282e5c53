package jobicy

import (
	"context"
	"fmt"
	"time"

	"github.com/careerpath-labs/jobengine/internal/domain"
	jobdomain "github.com/careerpath-labs/jobengine/internal/domain/job"
	"github.com/careerpath-labs/jobengine/pkg/jobicy"
)

// Source tags every job produced by this adapter.
const Source = "jobicy"

// feedClient describes the subset of the Jobicy client used by the provider.
type feedClient interface {
	FetchJobs(ctx context.Context) ([]jobicy.Posting, error)
}

// Provider implements job.Provider over the Jobicy firehose. The feed has no
// query-side filtering, so matching happens here against title, employer,
// and location.
type Provider struct {
	client feedClient
}

// NewProvider builds a Jobicy provider. A nil client yields a disabled
// provider that deterministically returns no results.
func NewProvider(client feedClient) *Provider {
	return &Provider{client: client}
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return Source
}

// Search pages the feed and keeps entries matching the query
func (p *Provider) Search(ctx context.Context, query string, _ domain.SearchOptions) ([]domain.Job, error) {
	if p == nil || p.client == nil {
		return nil, nil
	}

	postings, err := p.client.FetchJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("jobicy provider: %w", err)
	}

	now := time.Now()
	out := make([]domain.Job, 0, len(postings))
	for _, posting := range postings {
		if !jobdomain.MatchesQuery(query, posting.Title, posting.CompanyName, posting.Geo) {
			continue
		}
		out = append(out, mapPosting(posting, now))
	}

	return out, nil
}

func mapPosting(posting jobicy.Posting, now time.Time) domain.Job {
	description := posting.Description
	if description == "" {
		description = posting.Excerpt
	}

	j := domain.Job{
		ID:              jobdomain.NamespaceID(Source, posting.ID.String()),
		Title:           posting.Title,
		EmployerName:    posting.CompanyName,
		EmployerLogoURL: posting.CompanyLogo,
		Description:     description,
		ApplyURL:        posting.URL,
		Country:         posting.Geo,
		PostedAt:        jobdomain.ParseTimestamp(posting.PubDate),
		MinSalary:       jobdomain.Salary(posting.SalaryMin),
		MaxSalary:       jobdomain.Salary(posting.SalaryMax),
	}

	return jobdomain.Finalize(j, Source, now)
}

var _ jobdomain.Provider = (*Provider)(nil)
