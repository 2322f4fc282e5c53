package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerpath-labs/jobengine/internal/domain"
	"github.com/careerpath-labs/jobengine/internal/domain/job"
)

// JobSearchParams defines the arguments for the job_search tool
type JobSearchParams struct {
	Query    string `json:"query" jsonschema:"Free-text job search query"`
	Location string `json:"location,omitempty" jsonschema:"Free-text location hint"`
	IPCity   string `json:"ip_city,omitempty" jsonschema:"Geo-detected city used as a secondary location hint"`
}

// WithJobSearch registers the job_search tool over the aggregation service
func WithJobSearch(svc job.Service) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "job_search",
			Description: "Aggregate job postings from the warehouse and external providers into the canonical schema",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *JobSearchParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req

			result := svc.Search(ctx, params.Query, domain.SearchOptions{
				Location: params.Location,
				IPCity:   params.IPCity,
			})

			msg := fmt.Sprintf("found %d jobs (quality=%q)", len(result.Jobs), result.SourceQuality)
			return textResult(msg), result, nil
		})
	}
}
