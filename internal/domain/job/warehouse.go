package job

import (
	"context"
	"time"

	"github.com/careerpath-labs/jobengine/internal/domain"
)

// Warehouse is the recency-bounded store of previously fetched canonical jobs.
// It doubles as a write-through cache (primed after every live fetch) and as
// an emergency data source during rate-limit events.
type Warehouse interface {
	// QueryRecent returns stored jobs posted at or after the cutoff whose
	// title, employer, or description match the query (exact substring or any
	// whitespace token, case-insensitive).
	QueryRecent(ctx context.Context, query string, since time.Time) ([]domain.Job, error)

	// UpsertJobs writes jobs keyed by ID, replacing existing records.
	// Records are never deleted; staleness is handled on the read side.
	UpsertJobs(ctx context.Context, jobs []domain.Job) error
}
