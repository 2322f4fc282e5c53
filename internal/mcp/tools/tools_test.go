package tools

import (
	"context"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerpath-labs/jobengine/internal/domain"
)

type fakeService struct{}

func (fakeService) Search(context.Context, string, domain.SearchOptions) domain.SearchResult {
	return domain.SearchResult{Jobs: []domain.Job{}}
}

type fakeWarehouse struct{}

func (fakeWarehouse) QueryRecent(context.Context, string, time.Time) ([]domain.Job, error) {
	return nil, nil
}

func (fakeWarehouse) UpsertJobs(context.Context, []domain.Job) error { return nil }

type fakeSheets struct{}

func (fakeSheets) AppendRows(context.Context, string, string, [][]any) error { return nil }

func TestRegisterAllTools(t *testing.T) {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{Name: "test", Version: "0.0.0"}, nil)

	Register(server,
		WithJobSearch(fakeService{}),
		WithWarehouseRecent(fakeWarehouse{}),
		WithSheetsExport(fakeService{}, fakeSheets{}),
		nil,
	)
}

func TestJobLocation(t *testing.T) {
	cases := []struct {
		job  domain.Job
		want string
	}{
		{domain.Job{City: "Berlin", Country: "DE"}, "Berlin, DE"},
		{domain.Job{City: "Berlin"}, "Berlin"},
		{domain.Job{Region: "England"}, "England"},
		{domain.Job{Country: "US"}, "US"},
		{domain.Job{}, ""},
	}

	for _, tc := range cases {
		if got := jobLocation(tc.job); got != tc.want {
			t.Fatalf("jobLocation(%+v) = %q, want %q", tc.job, got, tc.want)
		}
	}
}
