// Package graph wraps the Neo4j driver behind the store gateway used by the
// agent pipeline. The connection is opened lazily on first use, shared for
// the process lifetime, and closed once at shutdown.
package graph

import (
	"context"
	"fmt"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"clubgraph/internal/config"
)

// Record is a single query result row, field name to value.
type Record map[string]any

// QueryResult is the outcome of executing a synthesized query: an ordered
// record sequence on success, or a failure carried in Err. Store faults are
// always absorbed into the failed state and never propagate past the gateway.
type QueryResult struct {
	Records []Record
	Err     error
}

// Failed reports whether query execution failed.
func (r QueryResult) Failed() bool {
	return r.Err != nil
}

// Empty reports whether the query succeeded but matched nothing.
func (r QueryResult) Empty() bool {
	return r.Err == nil && len(r.Records) == 0
}

// Store is the shared handle to the Neo4j knowledge graph. It is safe for
// concurrent use; the underlying driver manages its own connection pool.
type Store struct {
	uri      string
	username string
	password string
	logger   *zap.Logger

	mu     sync.Mutex
	driver neo4j.DriverWithContext
}

// NewStore creates a store handle without connecting. The first query
// establishes the connection.
func NewStore(cfg config.Neo4jConfig, logger *zap.Logger) *Store {
	return &Store{
		uri:      cfg.URI,
		username: cfg.Username,
		password: cfg.Password,
		logger:   logger,
	}
}

// connect returns the shared driver, creating it on first use.
func (s *Store) connect(ctx context.Context) (neo4j.DriverWithContext, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.driver != nil {
		return s.driver, nil
	}

	driver, err := neo4j.NewDriverWithContext(s.uri, neo4j.BasicAuth(s.username, s.password, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	s.logger.Info("connected to neo4j", zap.String("uri", s.uri))
	s.driver = driver
	return driver, nil
}

// Close releases the driver. Safe to call when no connection was ever made.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.driver == nil {
		return nil
	}
	driver := s.driver
	s.driver = nil
	return driver.Close(ctx)
}

// Query runs a Cypher query with parameters and returns the records in the
// order the store yields them. Used by seeding and schema management, which
// need errors surfaced rather than absorbed.
func (s *Store) Query(ctx context.Context, cypher string, params map[string]any) ([]Record, error) {
	driver, err := s.connect(ctx)
	if err != nil {
		return nil, err
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{})
	defer session.Close(ctx)

	result, err := session.Run(ctx, cypher, params)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	var records []Record
	for result.Next(ctx) {
		records = append(records, Record(result.Record().AsMap()))
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("result iteration failed: %w", err)
	}

	return records, nil
}

// Execute runs a synthesized Cypher query with no parameters. Any fault from
// the store is converted into a failed QueryResult; the error never escapes.
func (s *Store) Execute(ctx context.Context, cypher string) QueryResult {
	records, err := s.Query(ctx, cypher, nil)
	if err != nil {
		s.logger.Warn("query execution failed", zap.Error(err))
		return QueryResult{Err: err}
	}
	return QueryResult{Records: records}
}

// schemaConstraints declare uniqueness of node identifiers by kind.
var schemaConstraints = []string{
	"CREATE CONSTRAINT IF NOT EXISTS FOR (m:Member) REQUIRE m.id IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (d:Department) REQUIRE d.name IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (e:Event) REQUIRE e.name IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (p:Project) REQUIRE p.name IS UNIQUE",
	"CREATE CONSTRAINT IF NOT EXISTS FOR (p:Partner) REQUIRE p.name IS UNIQUE",
}

// InitSchema creates the uniqueness constraints. Idempotent.
func (s *Store) InitSchema(ctx context.Context) error {
	for _, constraint := range schemaConstraints {
		if _, err := s.Query(ctx, constraint, nil); err != nil {
			return fmt.Errorf("failed to create constraint: %w", err)
		}
	}
	return nil
}
