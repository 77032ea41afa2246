package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("NEO4J_URI", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "bolt://localhost:7687", cfg.Neo4j.URI)
	assert.Equal(t, ":8000", cfg.Server.Addr)
}

func TestLoad_YAMLFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("NEO4J_URI", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
llm:
  provider: openai
  model: gpt-4o
  timeout: 30s
neo4j:
  uri: bolt://graph:7687
server:
  addr: ":9090"
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "bolt://graph:7687", cfg.Neo4j.URI)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.GetLLMTimeout())
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [not a mapping"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("OPENAI_API_KEY sets key and keeps provider", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("GEMINI_API_KEY", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "sk-test", cfg.LLM.APIKey)
		assert.Equal(t, "openai", cfg.LLM.Provider)
	})

	t.Run("GEMINI_API_KEY overrides provider", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test")
		t.Setenv("GEMINI_API_KEY", "gm-test")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "gm-test", cfg.LLM.APIKey)
		assert.Equal(t, "gemini", cfg.LLM.Provider)
	})

	t.Run("Neo4j connection overrides", func(t *testing.T) {
		t.Setenv("NEO4J_URI", "neo4j://remote:7687")
		t.Setenv("NEO4J_USERNAME", "club")
		t.Setenv("NEO4J_PASSWORD", "secret")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "neo4j://remote:7687", cfg.Neo4j.URI)
		assert.Equal(t, "club", cfg.Neo4j.Username)
		assert.Equal(t, "secret", cfg.Neo4j.Password)
	})

	t.Run("server addr override", func(t *testing.T) {
		t.Setenv("CLUBGRAPH_ADDR", ":8081")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, ":8081", cfg.Server.Addr)
	})
}

func TestTimeoutFallbacks(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, 120*time.Second, cfg.GetLLMTimeout())
	assert.Equal(t, 10*time.Second, cfg.GetShutdownTimeout())
}
