package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"clubgraph/internal/config"
)

func TestQueryResult_States(t *testing.T) {
	t.Run("failed", func(t *testing.T) {
		r := QueryResult{Err: errors.New("connection refused")}
		assert.True(t, r.Failed())
		assert.False(t, r.Empty())
	})

	t.Run("empty", func(t *testing.T) {
		r := QueryResult{}
		assert.False(t, r.Failed())
		assert.True(t, r.Empty())
	})

	t.Run("populated", func(t *testing.T) {
		r := QueryResult{Records: []Record{{"m.name": "Development Core Team"}}}
		assert.False(t, r.Failed())
		assert.False(t, r.Empty())
	})
}

func TestStore_CloseWithoutConnect(t *testing.T) {
	store := NewStore(config.Neo4jConfig{URI: "bolt://localhost:7687"}, zap.NewNop())
	assert.NoError(t, store.Close(context.Background()))
}

func TestStore_ExecuteAbsorbsConnectFailure(t *testing.T) {
	// An unroutable scheme makes driver construction fail without network IO.
	store := NewStore(config.Neo4jConfig{URI: "not-a-scheme://nowhere"}, zap.NewNop())

	result := store.Execute(context.Background(), "MATCH (n) RETURN n")
	assert.True(t, result.Failed())
	assert.Empty(t, result.Records)
}
