//go:build wireinject
// +build wireinject

package mcp

import (
	"github.com/google/wire"

	"github.com/careerpath-labs/jobengine/internal/config"
	"github.com/careerpath-labs/jobengine/pkg/logging"
)

// InitializeResources assembles the resource graph: warehouse store, the
// four provider adapters, the orchestrator, and the export client.
func InitializeResources(cfg config.Config, logger *logging.Logger) (*Resources, error) {
	wire.Build(
		// Infrastructure
		provideNeo4jClient,
		provideWarehouse,
		provideSheetsClient,

		// Provider adapters
		provideJSearchProvider,
		provideAdzunaProvider,
		provideJobicyProvider,
		provideArbeitnowProvider,

		// Orchestrator
		provideJobService,

		newResources,
	)

	return &Resources{}, nil
}
