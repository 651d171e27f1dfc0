package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration structure.
type Config struct {
	API          APIConfig `yaml:"api"`
	DefaultModel string    `yaml:"default_model"`
	LogLevel     string    `yaml:"log_level"`
}

// APIConfig describes how to reach the remote model endpoint.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	KeyEnv  string `yaml:"key_env"`
	Timeout string `yaml:"timeout"`
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.DefaultModel == "" {
		return fmt.Errorf("default_model is required")
	}
	return nil
}

// APIKey returns the credential from the environment variable named by
// api.key_env. An empty string means the key is not set.
func (c *Config) APIKey() string {
	if c.API.KeyEnv == "" {
		return os.Getenv("XAI_API_KEY")
	}
	return os.Getenv(c.API.KeyEnv)
}

// HTTPTimeout parses api.timeout, falling back to 60s.
func (c *Config) HTTPTimeout() time.Duration {
	if c.API.Timeout != "" {
		if d, err := time.ParseDuration(c.API.Timeout); err == nil {
			return d
		}
	}
	return 60 * time.Second
}

// Load resolves config from defaults → user file → project file → env.
// A .env file in the working directory is read into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	// user-level config
	home, err := os.UserHomeDir()
	if err == nil {
		userPath := filepath.Join(home, ".grok-cli", "config.yaml")
		if err := mergeFile(cfg, userPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading user config: %w", err)
		}
	}

	// project-level config (highest priority)
	projectPath := filepath.Join(".grok-cli", "config.yaml")
	if err := mergeFile(cfg, projectPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	applyEnv(cfg)

	return cfg, nil
}

func mergeFile(dst *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, dst)
}

// applyEnv lets environment variables override file values.
func applyEnv(cfg *Config) {
	if v := os.Getenv("XAI_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("GROK_MODEL"); v != "" {
		cfg.DefaultModel = v
	}
	if v := os.Getenv("GROK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func defaults() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "https://api.x.ai/v1",
			KeyEnv:  "XAI_API_KEY",
			Timeout: "60s",
		},
		DefaultModel: "grok-4-0629",
		LogLevel:     "info",
	}
}
