package job

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/careerpath-labs/jobengine/internal/domain"
	"github.com/careerpath-labs/jobengine/pkg/logging"
)

const (
	// recencyWindow bounds how far back the warehouse read looks.
	recencyWindow = 48 * time.Hour
	// warehouseMinHits is the cache population above which no live provider
	// is called at all.
	warehouseMinHits = 5
	// placeholderLiteral is the stringified-object marker a broken upstream
	// caller can leak into the query.
	placeholderLiteral = "[object Object]"
	// fallbackQuery replaces queries that are empty after sanitation.
	fallbackQuery = "software engineer"

	persistTimeout = 10 * time.Second
)

// Service is the aggregation orchestrator. Search walks the provider
// waterfall and always resolves to a result; degradation is expressed
// through SourceQuality, never through an error.
type Service interface {
	Search(ctx context.Context, query string, opts domain.SearchOptions) domain.SearchResult
}

// Option configures Service
type Option func(*config)

type config struct {
	primary   Provider
	regional  Provider
	firehoses []Provider
	warehouse Warehouse
	logger    *logging.Logger
	clock     func() time.Time
}

// WithPrimary sets the deep-quality primary provider
func WithPrimary(p Provider) Option {
	return func(c *config) { c.primary = p }
}

// WithRegional sets the region-scoped fallback provider
func WithRegional(p Provider) Option {
	return func(c *config) { c.regional = p }
}

// WithFirehoses sets the last-resort feed providers, in concatenation order
func WithFirehoses(providers ...Provider) Option {
	return func(c *config) { c.firehoses = providers }
}

// WithWarehouse sets the cache/store collaborator
func WithWarehouse(w Warehouse) Option {
	return func(c *config) { c.warehouse = w }
}

// WithLogger sets the logger
func WithLogger(l *logging.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) { c.clock = clock }
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.warehouse == nil {
		return nil, fmt.Errorf("job.Service: warehouse is required")
	}
	if cfg.primary == nil || cfg.regional == nil {
		return nil, fmt.Errorf("job.Service: primary and regional providers are required")
	}
	if len(cfg.firehoses) != 2 {
		return nil, fmt.Errorf("job.Service: exactly two firehose providers are required, got %d", len(cfg.firehoses))
	}
	if cfg.logger == nil {
		cfg.logger = logging.New("info")
	}

	return &service{
		primary:   cfg.primary,
		regional:  cfg.regional,
		firehoses: [2]Provider{cfg.firehoses[0], cfg.firehoses[1]},
		warehouse: cfg.warehouse,
		logger:    cfg.logger,
		clock:     cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(
	warehouse Warehouse,
	primary Provider,
	regional Provider,
	firehoseA Provider,
	firehoseB Provider,
	logger *logging.Logger,
) (Service, error) {
	return NewService(
		WithWarehouse(warehouse),
		WithPrimary(primary),
		WithRegional(regional),
		WithFirehoses(firehoseA, firehoseB),
		WithLogger(logger),
	)
}

type service struct {
	primary   Provider
	regional  Provider
	firehoses [2]Provider
	warehouse Warehouse
	logger    *logging.Logger
	clock     func() time.Time
}

// Search runs the waterfall: warehouse short-circuit, primary provider,
// regional fallback joined with a cache retry on rate limiting, then both
// firehoses. Each stage only runs when every earlier one came back empty.
func (s *service) Search(ctx context.Context, query string, opts domain.SearchOptions) domain.SearchResult {
	q := sanitizeQuery(query)
	cutoff := s.clock().Add(-recencyWindow)

	// Stage 1: a well-populated cache answers without any live call.
	cached, err := s.warehouse.QueryRecent(ctx, q, cutoff)
	if err != nil {
		s.logger.Warn("warehouse query failed, falling through to providers", "query", q, "err", err)
	}
	if len(cached) > warehouseMinHits {
		return domain.SearchResult{Jobs: cached, SourceQuality: domain.QualityStandard}
	}

	// Stage 2: primary provider.
	primaryJobs, err := s.primary.Search(ctx, q, opts)
	rateLimited := errors.Is(err, ErrRateLimited)
	if err != nil {
		s.logger.Warn("primary provider failed", "provider", s.primary.Name(), "rate_limited", rateLimited, "err", err)
	}
	if !rateLimited && len(primaryJobs) > 0 {
		s.persistAsync(ctx, primaryJobs)
		return domain.SearchResult{Jobs: primaryJobs, SourceQuality: domain.QualityDeep}
	}

	// Stage 3: regional provider, joined with a second warehouse read when
	// the primary was rate limited (another caller may have primed it since).
	opts.Region = ResolveRegion(opts.Location, opts.IPCity)

	var regionalJobs, cachedRetry []domain.Job
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobs, err := s.regional.Search(gctx, q, opts)
		if err != nil {
			s.logger.Warn("regional provider failed", "provider", s.regional.Name(), "region", opts.Region, "err", err)
			return nil
		}
		regionalJobs = jobs
		return nil
	})
	if rateLimited {
		g.Go(func() error {
			jobs, err := s.warehouse.QueryRecent(gctx, q, cutoff)
			if err != nil {
				s.logger.Warn("warehouse retry failed", "query", q, "err", err)
				return nil
			}
			cachedRetry = jobs
			return nil
		})
	}
	_ = g.Wait()

	if len(regionalJobs) > 0 {
		s.persistAsync(ctx, regionalJobs)
		return domain.SearchResult{Jobs: regionalJobs, SourceQuality: domain.QualityStandard}
	}
	if len(cachedRetry) > 0 {
		return domain.SearchResult{Jobs: cachedRetry, SourceQuality: domain.QualityStandard}
	}

	// Stage 4: both firehoses, concatenated in fixed order regardless of
	// which resolves first.
	var firehoseJobs [2][]domain.Job
	fg, fctx := errgroup.WithContext(ctx)
	for i, p := range s.firehoses {
		fg.Go(func() error {
			jobs, err := p.Search(fctx, q, opts)
			if err != nil {
				s.logger.Warn("firehose provider failed", "provider", p.Name(), "err", err)
				return nil
			}
			firehoseJobs[i] = jobs
			return nil
		})
	}
	_ = fg.Wait()

	combined := append(firehoseJobs[0], firehoseJobs[1]...)
	if len(combined) > 0 {
		s.persistAsync(ctx, combined)
		return domain.SearchResult{Jobs: combined, SourceQuality: domain.QualityStandard}
	}

	// Every tier exhausted: in-band empty result.
	return domain.SearchResult{Jobs: []domain.Job{}}
}

// persistAsync primes the warehouse without holding up the response path.
// Failures are logged and dropped; records are re-derivable from source data.
func (s *service) persistAsync(ctx context.Context, jobs []domain.Job) {
	bg := context.WithoutCancel(ctx)
	go func() {
		pctx, cancel := context.WithTimeout(bg, persistTimeout)
		defer cancel()

		if err := s.warehouse.UpsertJobs(pctx, jobs); err != nil {
			s.logger.Warn("warehouse upsert failed", "count", len(jobs), "err", err)
		}
	}()
}

// sanitizeQuery strips the corrupted-object marker and substitutes the
// fallback term for queries left empty.
func sanitizeQuery(query string) string {
	q := strings.TrimSpace(query)
	if strings.Contains(q, placeholderLiteral) {
		q = strings.TrimSpace(strings.ReplaceAll(q, placeholderLiteral, ""))
	}
	if q == "" {
		return fallbackQuery
	}
	return q
}
