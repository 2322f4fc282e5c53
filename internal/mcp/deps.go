package mcp

import (
	"context"
	"time"

	"github.com/careerpath-labs/jobengine/internal/config"
	"github.com/careerpath-labs/jobengine/internal/domain"
	"github.com/careerpath-labs/jobengine/internal/domain/job"
	adzunaProvider "github.com/careerpath-labs/jobengine/internal/domain/job/providers/adzuna"
	arbeitnowProvider "github.com/careerpath-labs/jobengine/internal/domain/job/providers/arbeitnow"
	jobicyProvider "github.com/careerpath-labs/jobengine/internal/domain/job/providers/jobicy"
	jsearchProvider "github.com/careerpath-labs/jobengine/internal/domain/job/providers/jsearch"
	"github.com/careerpath-labs/jobengine/internal/mcp/tools"
	storage "github.com/careerpath-labs/jobengine/internal/storage/neo4j"
	"github.com/careerpath-labs/jobengine/pkg/adzuna"
	"github.com/careerpath-labs/jobengine/pkg/arbeitnow"
	"github.com/careerpath-labs/jobengine/pkg/jobicy"
	"github.com/careerpath-labs/jobengine/pkg/jsearch"
	"github.com/careerpath-labs/jobengine/pkg/logging"
	n4j "github.com/careerpath-labs/jobengine/pkg/neo4j"
	"github.com/careerpath-labs/jobengine/pkg/sheets"
)

// Every provider function degrades instead of failing: a missing credential
// or unreachable collaborator disables that one capability and the rest of
// the engine keeps serving.

// provideNeo4jClient connects the warehouse store; nil when unconfigured or
// unreachable.
func provideNeo4jClient(cfg config.Config, logger *logging.Logger) *n4j.Client {
	if cfg.Neo4j.URI == "" {
		logger.Warn("neo4j not configured, warehouse disabled")
		return nil
	}

	client, err := n4j.NewClient(n4j.Config{
		URI:      cfg.Neo4j.URI,
		Username: cfg.Neo4j.Username,
		Password: cfg.Neo4j.Password,
	})
	if err != nil {
		logger.Warn("neo4j unavailable, warehouse disabled", "err", err)
		return nil
	}

	logger.Info("neo4j warehouse connected", "uri", cfg.Neo4j.URI)
	return client
}

// provideWarehouse wraps the Neo4j client, or substitutes an empty-answer
// warehouse so the orchestrator falls straight through to live providers.
func provideWarehouse(client *n4j.Client) job.Warehouse {
	if client == nil {
		return nopWarehouse{}
	}
	return storage.NewWarehouse(client)
}

// provideJSearchProvider builds the primary adapter, disabled without its
// key + host credential pair.
func provideJSearchProvider(cfg config.Config, logger *logging.Logger) *jsearchProvider.Provider {
	if cfg.JSearch.APIKey == "" || cfg.JSearch.APIHost == "" {
		logger.Warn("jsearch credentials missing, primary provider disabled")
		return jsearchProvider.NewProvider(nil)
	}

	client, err := jsearch.NewClient(jsearch.Config{
		APIKey:  cfg.JSearch.APIKey,
		APIHost: cfg.JSearch.APIHost,
	})
	if err != nil {
		logger.Warn("jsearch client init failed, primary provider disabled", "err", err)
		return jsearchProvider.NewProvider(nil)
	}

	return jsearchProvider.NewProvider(client)
}

// provideAdzunaProvider builds the regional adapter, disabled without its
// app id + app key credential pair.
func provideAdzunaProvider(cfg config.Config, logger *logging.Logger) *adzunaProvider.Provider {
	if cfg.Adzuna.AppID == "" || cfg.Adzuna.AppKey == "" {
		logger.Warn("adzuna credentials missing, regional provider disabled")
		return adzunaProvider.NewProvider(nil)
	}

	client, err := adzuna.NewClient(adzuna.Config{
		AppID:  cfg.Adzuna.AppID,
		AppKey: cfg.Adzuna.AppKey,
	})
	if err != nil {
		logger.Warn("adzuna client init failed, regional provider disabled", "err", err)
		return adzunaProvider.NewProvider(nil)
	}

	return adzunaProvider.NewProvider(client)
}

// provideJobicyProvider builds the first firehose adapter (unauthenticated)
func provideJobicyProvider() *jobicyProvider.Provider {
	return jobicyProvider.NewProvider(jobicy.NewClient(jobicy.Config{}))
}

// provideArbeitnowProvider builds the second firehose adapter (unauthenticated)
func provideArbeitnowProvider() *arbeitnowProvider.Provider {
	return arbeitnowProvider.NewProvider(arbeitnow.NewClient(arbeitnow.Config{}))
}

// provideJobService assembles the waterfall orchestrator
func provideJobService(
	warehouse job.Warehouse,
	primary *jsearchProvider.Provider,
	regional *adzunaProvider.Provider,
	firehoseA *jobicyProvider.Provider,
	firehoseB *arbeitnowProvider.Provider,
	logger *logging.Logger,
) (job.Service, error) {
	return job.NewServiceWithDeps(warehouse, primary, regional, firehoseA, firehoseB, logger)
}

// provideSheetsClient builds the export client; nil disables the export tool.
func provideSheetsClient(cfg config.Config, logger *logging.Logger) tools.SheetsClient {
	if cfg.Sheets.CredentialsPath == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := sheets.NewClient(ctx, sheets.Config{CredentialsPath: cfg.Sheets.CredentialsPath})
	if err != nil {
		logger.Warn("sheets client init failed, export disabled", "err", err)
		return nil
	}

	return client
}

// newResources creates the Resources struct
func newResources(
	jobService job.Service,
	warehouse job.Warehouse,
	sheetsClient tools.SheetsClient,
	neo4jClient *n4j.Client,
) *Resources {
	return &Resources{
		JobService:  jobService,
		Warehouse:   warehouse,
		Sheets:      sheetsClient,
		Neo4jClient: neo4jClient,
	}
}

// nopWarehouse answers every read with nothing and accepts every write,
// letting the orchestrator treat a missing store as an always-cold cache.
type nopWarehouse struct{}

func (nopWarehouse) QueryRecent(context.Context, string, time.Time) ([]domain.Job, error) {
	return nil, nil
}

func (nopWarehouse) UpsertJobs(context.Context, []domain.Job) error {
	return nil
}
