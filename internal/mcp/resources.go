package mcp

import (
	"context"

	"github.com/careerpath-labs/jobengine/internal/domain/job"
	"github.com/careerpath-labs/jobengine/internal/mcp/tools"
	n4j "github.com/careerpath-labs/jobengine/pkg/neo4j"
)

// Resources holds everything the tool surface depends on.
type Resources struct {
	JobService  job.Service
	Warehouse   job.Warehouse
	Sheets      tools.SheetsClient
	Neo4jClient *n4j.Client
}

// Close releases held connections
func (r *Resources) Close(ctx context.Context) error {
	if r == nil {
		return nil
	}
	return r.Neo4jClient.Close(ctx)
}
