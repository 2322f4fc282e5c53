package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerpath-labs/jobengine/internal/domain"
	"github.com/careerpath-labs/jobengine/internal/domain/job"
)

// SheetsClient describes the subset of the Sheets client used by the export tool.
type SheetsClient interface {
	AppendRows(ctx context.Context, spreadsheetID, a1Range string, values [][]any) error
}

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	Query         string `json:"query" jsonschema:"Search query whose results get exported"`
	Location      string `json:"location,omitempty" jsonschema:"Free-text location hint"`
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name to append rows to"`
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string               `json:"spreadsheet_id"`
	Tab           string               `json:"tab,omitempty"`
	WrittenRows   int                  `json:"written_rows"`
	SourceQuality domain.SourceQuality `json:"source_quality,omitempty"`
}

// WithSheetsExport registers the sheets_export tool, which runs a search and
// appends the canonical jobs as spreadsheet rows.
func WithSheetsExport(svc job.Service, sheets SheetsClient) Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "sheets_export",
			Description: "Run a job search and append the results to a Google Sheets tab",
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest, params *SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
			_ = req

			if sheets == nil {
				return textResult("sheets export unavailable: no credentials configured"), nil, nil
			}
			if params.SpreadsheetID == "" {
				return nil, nil, fmt.Errorf("spreadsheet_id is required")
			}

			result := svc.Search(ctx, params.Query, domain.SearchOptions{Location: params.Location})

			tab := params.Tab
			if tab == "" {
				tab = "Jobs"
			}

			rows := make([][]any, 0, len(result.Jobs)+1)
			rows = append(rows, []any{"Title", "Employer", "Location", "Posted", "Apply URL", "Source"})
			for _, j := range result.Jobs {
				rows = append(rows, []any{
					j.Title,
					j.EmployerName,
					jobLocation(j),
					j.PostedAt.Format("2006-01-02"),
					j.ApplyURL,
					j.Source,
				})
			}

			if err := sheets.AppendRows(ctx, params.SpreadsheetID, tab+"!A1", rows); err != nil {
				return nil, nil, fmt.Errorf("sheets append: %w", err)
			}

			out := SheetsExportResult{
				SpreadsheetID: params.SpreadsheetID,
				Tab:           tab,
				WrittenRows:   len(result.Jobs),
				SourceQuality: result.SourceQuality,
			}

			msg := fmt.Sprintf("exported %d jobs to %s/%s", out.WrittenRows, out.SpreadsheetID, out.Tab)
			return textResult(msg), out, nil
		})
	}
}

func jobLocation(j domain.Job) string {
	switch {
	case j.City != "" && j.Country != "":
		return j.City + ", " + j.Country
	case j.City != "":
		return j.City
	case j.Region != "":
		return j.Region
	default:
		return j.Country
	}
}
