// Package driver wraps the Bolt connection to Memgraph. Dialogue trees are
// the only graph-shaped assets, so the schema is small: dialogue, node and
// terminal vertices plus the edges between them.
package driver

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
)

type MemgraphDriver struct {
	driver neo4j.DriverWithContext
	log    zerolog.Logger
}

func NewMemgraphDriver(ctx context.Context, uri, username, password string, log zerolog.Logger) (*MemgraphDriver, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, fmt.Errorf("memgraph driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, fmt.Errorf("memgraph connectivity: %w", err)
	}

	log.Info().Str("uri", uri).Msg("connected to Memgraph")
	return &MemgraphDriver{driver: driver, log: log}, nil
}

func (d *MemgraphDriver) Close(ctx context.Context) error {
	return d.driver.Close(ctx)
}

func (d *MemgraphDriver) ExecuteQuery(ctx context.Context, query string, params map[string]any) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, d.driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

// BuildIndices creates the lookup indices. Failures are logged and skipped:
// the index usually already exists.
func (d *MemgraphDriver) BuildIndices(ctx context.Context) error {
	queries := []string{
		"CREATE INDEX ON :Dialogue(dialogue_id);",
		"CREATE INDEX ON :DialogueNode(key);",
		"CREATE INDEX ON :DialogueNode(dialogue_id);",
		"CREATE INDEX ON :DialogueTerminal(dialogue_id);",
	}

	for _, q := range queries {
		if _, err := d.ExecuteQuery(ctx, q, nil); err != nil {
			d.log.Warn().Err(err).Str("query", q).Msg("failed to create index")
		}
	}
	return nil
}
