// Package config loads clubgraph configuration from a YAML file with
// environment variable overrides. A missing config file is not an error;
// defaults are used instead.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all clubgraph configuration.
type Config struct {
	// LLM configuration (generation channel)
	LLM LLMConfig `yaml:"llm"`

	// Neo4j knowledge graph configuration
	Neo4j Neo4jConfig `yaml:"neo4j"`

	// HTTP server settings
	Server ServerConfig `yaml:"server"`
}

// LLMConfig configures the generation channel.
type LLMConfig struct {
	Provider    string  `yaml:"provider"` // openai, gemini
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	Temperature float64 `yaml:"temperature"`
	Timeout     string  `yaml:"timeout"`
}

// Neo4jConfig configures the graph store connection.
type Neo4jConfig struct {
	URI      string `yaml:"uri"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// ServerConfig configures the HTTP front door.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			BaseURL:     "https://api.openai.com/v1",
			Temperature: 0,
			Timeout:     "120s",
		},
		Neo4j: Neo4jConfig{
			URI:      "bolt://localhost:7687",
			Username: "neo4j",
			Password: "password",
		},
		Server: ServerConfig{
			Addr:            ":8000",
			ShutdownTimeout: "10s",
		},
	}
}

// Load loads configuration from a YAML file.
// Defaults are returned when the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	// LLM API key from environment (check in priority order)
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		if c.LLM.Provider == "" {
			c.LLM.Provider = "openai"
		}
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.LLM.APIKey = key
		c.LLM.Provider = "gemini"
	}
	if model := os.Getenv("CLUBGRAPH_MODEL"); model != "" {
		c.LLM.Model = model
	}
	if url := os.Getenv("CLUBGRAPH_LLM_BASE_URL"); url != "" {
		c.LLM.BaseURL = url
	}

	// Neo4j connection from environment
	if uri := os.Getenv("NEO4J_URI"); uri != "" {
		c.Neo4j.URI = uri
	}
	if user := os.Getenv("NEO4J_USERNAME"); user != "" {
		c.Neo4j.Username = user
	}
	if pass := os.Getenv("NEO4J_PASSWORD"); pass != "" {
		c.Neo4j.Password = pass
	}

	if addr := os.Getenv("CLUBGRAPH_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

// GetLLMTimeout returns the LLM timeout as a duration.
func (c *Config) GetLLMTimeout() time.Duration {
	d, err := time.ParseDuration(c.LLM.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// GetShutdownTimeout returns the server shutdown timeout as a duration.
func (c *Config) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
