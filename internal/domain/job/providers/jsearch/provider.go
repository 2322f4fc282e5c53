package jsearch

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/careerpath-labs/jobengine/internal/domain"
	jobdomain "github.com/careerpath-labs/jobengine/internal/domain/job"
	"github.com/careerpath-labs/jobengine/pkg/jsearch"
)

// Source tags every job produced by this adapter.
const Source = "jsearch"

// searchClient describes the subset of the JSearch client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, query, location string) ([]jsearch.Posting, error)
}

// Provider implements job.Provider using the JSearch API. It is the primary,
// "deep" tier of the waterfall.
type Provider struct {
	client searchClient
}

// NewProvider builds a JSearch provider. A nil client yields a disabled
// provider that deterministically returns no results, which is how missing
// credentials degrade instead of failing startup.
func NewProvider(client searchClient) *Provider {
	return &Provider{client: client}
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return Source
}

// Search queries JSearch and returns normalized jobs. Rate limiting is
// reported as job.ErrRateLimited, distinct from an empty result.
func (p *Provider) Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Job, error) {
	if p == nil || p.client == nil {
		return nil, nil
	}

	postings, err := p.client.SearchJobs(ctx, query, opts.Location)
	if err != nil {
		if errors.Is(err, jsearch.ErrRateLimited) {
			return nil, fmt.Errorf("jsearch provider: %w", jobdomain.ErrRateLimited)
		}
		return nil, fmt.Errorf("jsearch provider: %w", err)
	}

	now := time.Now()
	out := make([]domain.Job, 0, len(postings))
	for _, posting := range postings {
		out = append(out, mapPosting(posting, now))
	}

	return out, nil
}

func mapPosting(posting jsearch.Posting, now time.Time) domain.Job {
	j := domain.Job{
		ID:              jobdomain.NamespaceID(Source, string(posting.JobID)),
		Title:           string(posting.Title),
		EmployerName:    string(posting.EmployerName),
		EmployerLogoURL: posting.EmployerLogo,
		Description:     posting.Description,
		ApplyURL:        posting.ApplyLink,
		City:            posting.City,
		Region:          posting.State,
		Country:         posting.Country,
		PostedAt:        jobdomain.ParseTimestamp(posting.PostedAtUTC),
		MinSalary:       jobdomain.Salary(float64(posting.MinSalary)),
		MaxSalary:       jobdomain.Salary(float64(posting.MaxSalary)),
		Highlights:      cleanHighlights(posting.Highlights),
	}

	return jobdomain.Finalize(j, Source, now)
}

func cleanHighlights(raw map[string][]string) map[string][]string {
	if len(raw) == 0 {
		return nil
	}

	out := make(map[string][]string, len(raw))
	for category, snippets := range raw {
		kept := make([]string, 0, len(snippets))
		for _, s := range snippets {
			if s = strings.TrimSpace(s); s != "" {
				kept = append(kept, s)
			}
		}
		if len(kept) > 0 {
			out[category] = kept
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

var _ jobdomain.Provider = (*Provider)(nil)
