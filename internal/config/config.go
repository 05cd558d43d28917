// Package config loads the TOML configuration file and applies environment
// overrides for the values that differ between deployments (API keys,
// endpoints). Prompt templates live in the same file so a prompt change
// never requires a rebuild.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider  string `toml:"provider"`
	Model     string `toml:"model"`
	APIKey    string `toml:"api_key"`
	BaseURL   string `toml:"base_url"`
	MaxTokens int    `toml:"max_tokens"`
	// MockFallback serves canned output when the provider fails at the
	// transport level instead of surfacing the error.
	MockFallback bool `toml:"mock_fallback"`
}

type GenerationConfig struct {
	MaxAttempts int     `toml:"max_attempts"`
	RetryDelay  string  `toml:"retry_delay"`
	Temperature float64 `toml:"temperature"`
	// Fallback serves the canned record after all attempts fail.
	Fallback bool `toml:"fallback"`
}

// RetryDelayDuration parses the configured delay, defaulting to 2s when the
// field is empty and rejecting malformed values at startup rather than at
// request time.
func (g GenerationConfig) RetryDelayDuration() (time.Duration, error) {
	if g.RetryDelay == "" {
		return 2 * time.Second, nil
	}
	d, err := time.ParseDuration(g.RetryDelay)
	if err != nil {
		return 0, fmt.Errorf("invalid generation.retry_delay %q: %w", g.RetryDelay, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("generation.retry_delay must not be negative, got %q", g.RetryDelay)
	}
	return d, nil
}

type StorageConfig struct {
	// OutputDir is the root under which per-kind asset directories are
	// created.
	OutputDir string `toml:"output_dir"`
}

type MemgraphConfig struct {
	// URI empty disables graph persistence.
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// PromptTemplates carries the per-kind system prompts. Each one states the
// exact JSON contract the validator enforces.
type PromptTemplates struct {
	Monster  string `toml:"monster"`
	Item     string `toml:"item"`
	Dialogue string `toml:"dialogue"`
}

type Config struct {
	LLM        LLMConfig        `toml:"llm"`
	Generation GenerationConfig `toml:"generation"`
	Storage    StorageConfig    `toml:"storage"`
	Memgraph   MemgraphConfig   `toml:"memgraph"`
	Server     ServerConfig     `toml:"server"`
	Prompts    PromptTemplates  `toml:"prompts"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// applyEnv lets deployment-specific values override the file without
// editing it. Only secrets and endpoints are overridable.
func (c *Config) applyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		c.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		c.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		c.Memgraph.Password = v
	}
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		c.Storage.OutputDir = v
	}
	if v := os.Getenv("GENERATION_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Generation.MaxAttempts = n
		}
	}
}

func (c *Config) applyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	if c.LLM.MaxTokens <= 0 {
		c.LLM.MaxTokens = 4096
	}
	if c.Generation.MaxAttempts <= 0 {
		c.Generation.MaxAttempts = 3
	}
	if c.Generation.Temperature == 0 {
		c.Generation.Temperature = 0.8
	}
	if c.Storage.OutputDir == "" {
		c.Storage.OutputDir = "output/assets"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
}
