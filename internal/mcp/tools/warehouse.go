package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerpath-labs/jobengine/internal/domain/job"
)

// WarehouseRecentParams defines the arguments for the warehouse_recent tool
type WarehouseRecentParams struct {
	Query string `json:"query,omitempty" jsonschema:"Optional text filter over title/employer/description"`
	Hours int    `json:"hours,omitempty" jsonschema:"Recency window in hours, default 48"`
}

// WithWarehouseRecent registers a tool for inspecting the recency window of
// the warehouse without going through the provider waterfall.
func WithWarehouseRecent(warehouse job.Warehouse) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "warehouse_recent",
			Description: "List warehouse records inside the recency window, optionally text-filtered",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *WarehouseRecentParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req

			hours := params.Hours
			if hours <= 0 {
				hours = 48
			}

			since := time.Now().Add(-time.Duration(hours) * time.Hour)
			jobs, err := warehouse.QueryRecent(ctx, params.Query, since)
			if err != nil {
				return nil, nil, fmt.Errorf("warehouse query: %w", err)
			}

			msg := fmt.Sprintf("%d warehouse records in the last %dh", len(jobs), hours)
			return textResult(msg), jobs, nil
		})
	}
}
