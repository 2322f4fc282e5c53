package neo4j

import (
	"context"
	"encoding/json"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/careerpath-labs/jobengine/internal/domain"
	jobdomain "github.com/careerpath-labs/jobengine/internal/domain/job"
	pkgneo4j "github.com/careerpath-labs/jobengine/pkg/neo4j"
)

// Ensure Warehouse implements job.Warehouse
var _ jobdomain.Warehouse = (*Warehouse)(nil)

// readLimit caps how many recency-window candidates one query pulls back
// before text matching.
const readLimit = 500

// Warehouse implements job.Warehouse with Neo4j. Records are merged by id
// (last write wins) and never deleted; the read side applies the recency
// cutoff and the shared text matcher.
type Warehouse struct {
	client *pkgneo4j.Client
}

// NewWarehouse creates a Warehouse with a Neo4j client
func NewWarehouse(client *pkgneo4j.Client) *Warehouse {
	return &Warehouse{client: client}
}

// UpsertJobs merges canonical jobs keyed by id
func (w *Warehouse) UpsertJobs(ctx context.Context, jobs []domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	session := w.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	query := `
		UNWIND $jobs AS job
		MERGE (j:JobPosting {id: job.id})
		SET j.source = job.source,
		    j.title = job.title,
		    j.employer = job.employer,
		    j.logoUrl = job.logoUrl,
		    j.description = job.description,
		    j.applyUrl = job.applyUrl,
		    j.city = job.city,
		    j.region = job.region,
		    j.country = job.country,
		    j.postedAt = datetime({epochMillis: job.postedAt}),
		    j.minSalary = job.minSalary,
		    j.maxSalary = job.maxSalary,
		    j.highlights = job.highlights
	`

	jobsData := make([]map[string]any, 0, len(jobs))
	for _, j := range jobs {
		var highlights any
		if len(j.Highlights) > 0 {
			if encoded, err := json.Marshal(j.Highlights); err == nil {
				highlights = string(encoded)
			}
		}

		var minSalary, maxSalary any
		if j.MinSalary != nil {
			minSalary = int64(*j.MinSalary)
		}
		if j.MaxSalary != nil {
			maxSalary = int64(*j.MaxSalary)
		}

		jobsData = append(jobsData, map[string]any{
			"id":          j.ID,
			"source":      j.Source,
			"title":       j.Title,
			"employer":    j.EmployerName,
			"logoUrl":     j.EmployerLogoURL,
			"description": j.Description,
			"applyUrl":    j.ApplyURL,
			"city":        j.City,
			"region":      j.Region,
			"country":     j.Country,
			"postedAt":    j.PostedAt.UnixMilli(),
			"minSalary":   minSalary,
			"maxSalary":   maxSalary,
			"highlights":  highlights,
		})
	}

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, query, map[string]any{"jobs": jobsData})
		if err != nil {
			return nil, err
		}
		return result.Consume(ctx)
	})

	return err
}

// QueryRecent loads jobs posted at or after the cutoff and keeps the ones
// matching the query text
func (w *Warehouse) QueryRecent(ctx context.Context, query string, since time.Time) ([]domain.Job, error) {
	session := w.client.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	cypher := `
		MATCH (j:JobPosting)
		WHERE j.postedAt >= datetime({epochMillis: $since})
		RETURN j
		ORDER BY j.postedAt DESC
		LIMIT $limit
	`

	records, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, cypher, map[string]any{
			"since": since.UnixMilli(),
			"limit": readLimit,
		})
		if err != nil {
			return nil, err
		}

		rows, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}

	rows := records.([]*neo4j.Record)
	jobs := make([]domain.Job, 0, len(rows))

	for _, record := range rows {
		nodeVal, ok := record.Get("j")
		if !ok {
			continue
		}
		node, ok := nodeVal.(neo4j.Node)
		if !ok {
			continue
		}

		j := jobFromProps(node.Props)
		if !jobdomain.MatchesQuery(query, j.Title, j.EmployerName, j.Description) {
			continue
		}
		jobs = append(jobs, j)
	}

	return jobs, nil
}

func jobFromProps(props map[string]any) domain.Job {
	j := domain.Job{
		ID:              stringProp(props, "id"),
		Source:          stringProp(props, "source"),
		Title:           stringProp(props, "title"),
		EmployerName:    stringProp(props, "employer"),
		EmployerLogoURL: stringProp(props, "logoUrl"),
		Description:     stringProp(props, "description"),
		ApplyURL:        stringProp(props, "applyUrl"),
		City:            stringProp(props, "city"),
		Region:          stringProp(props, "region"),
		Country:         stringProp(props, "country"),
		MinSalary:       intProp(props, "minSalary"),
		MaxSalary:       intProp(props, "maxSalary"),
	}

	if postedAtVal, ok := props["postedAt"]; ok {
		switch dt := postedAtVal.(type) {
		case time.Time:
			j.PostedAt = dt.UTC()
		case neo4j.LocalDateTime:
			j.PostedAt = dt.Time().UTC()
		}
	}

	if raw := stringProp(props, "highlights"); raw != "" {
		var highlights map[string][]string
		if err := json.Unmarshal([]byte(raw), &highlights); err == nil && len(highlights) > 0 {
			j.Highlights = highlights
		}
	}

	return j
}

func stringProp(props map[string]any, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func intProp(props map[string]any, key string) *int {
	if v, ok := props[key].(int64); ok {
		n := int(v)
		return &n
	}
	return nil
}
