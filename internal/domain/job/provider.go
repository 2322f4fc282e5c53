package job

import (
	"context"
	"errors"

	"github.com/careerpath-labs/jobengine/internal/domain"
)

// ErrRateLimited is returned by the primary provider when the upstream API
// answers 429 or 403. It must stay distinguishable from an empty result set
// because it switches the orchestrator onto the warehouse-retry branch.
var ErrRateLimited = errors.New("provider rate limited")

// Provider represents one external job listing source plus its normalization
// logic. Implementations map raw payloads into canonical jobs tagged with
// their own source identity; they never mutate a job after returning it.
type Provider interface {
	// e.g. "jsearch" or "adzuna"
	Name() string

	// Search returns normalized jobs for a query. Transport and parse
	// failures come back as errors; the orchestrator logs them and treats
	// them as zero results, so no provider failure can block the others.
	Search(ctx context.Context, query string, opts domain.SearchOptions) ([]domain.Job, error)
}
