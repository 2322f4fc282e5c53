package arbeitnow

import (
	"context"
	"fmt"
	"time"

	"github.com/careerpath-labs/jobengine/internal/domain"
	jobdomain "github.com/careerpath-labs/jobengine/internal/domain/job"
	"github.com/careerpath-labs/jobengine/pkg/arbeitnow"
)

// Source tags every job produced by this adapter.
const Source = "arbeitnow"

// feedClient describes the subset of the Arbeitnow client used by the provider.
type feedClient interface {
	FetchJobs(ctx context.Context) ([]arbeitnow.Posting, error)
}

// Provider implements job.Provider over the Arbeitnow firehose, filtering
// the unqueried feed client-side.
type Provider struct {
	client feedClient
}

// NewProvider builds an Arbeitnow provider. A nil client yields a disabled
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
		return nil, fmt.Errorf("arbeitnow provider: %w", err)
	}

	now := time.Now()
	out := make([]domain.Job, 0, len(postings))
	for _, posting := range postings {
		if !jobdomain.MatchesQuery(query, posting.Title, posting.CompanyName, posting.Location) {
			continue
		}
		out = append(out, mapPosting(posting, now))
	}

	return out, nil
}

func mapPosting(posting arbeitnow.Posting, now time.Time) domain.Job {
	var postedAt time.Time
	if posting.CreatedAt > 0 {
		postedAt = time.Unix(posting.CreatedAt, 0).UTC()
	}

	j := domain.Job{
		ID:           jobdomain.NamespaceID(Source, posting.Slug),
		Title:        posting.Title,
		EmployerName: posting.CompanyName,
		Description:  posting.Description,
		ApplyURL:     posting.URL,
		City:         posting.Location,
		PostedAt:     postedAt,
	}

	return jobdomain.Finalize(j, Source, now)
}

var _ jobdomain.Provider = (*Provider)(nil)
