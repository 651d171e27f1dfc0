package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := defaults()
	if cfg.API.BaseURL != "https://api.x.ai/v1" {
		t.Errorf("expected xAI base URL, got %q", cfg.API.BaseURL)
	}
	if cfg.DefaultModel != "grok-4-0629" {
		t.Errorf("expected default model 'grok-4-0629', got %q", cfg.DefaultModel)
	}
	if cfg.API.KeyEnv != "XAI_API_KEY" {
		t.Errorf("expected key env 'XAI_API_KEY', got %q", cfg.API.KeyEnv)
	}
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}

	cfg.API.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty api.base_url")
	}
}

func TestMergeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("log_level: debug\ndefault_model: grok-3\n")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg := defaults()
	if err := mergeFile(cfg, path); err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected 'debug', got %q", cfg.LogLevel)
	}
	if cfg.DefaultModel != "grok-3" {
		t.Errorf("expected merged model 'grok-3', got %q", cfg.DefaultModel)
	}
	// untouched fields keep defaults
	if cfg.API.BaseURL != "https://api.x.ai/v1" {
		t.Errorf("merge clobbered api.base_url: %q", cfg.API.BaseURL)
	}
}

func TestMergeFileNotExist(t *testing.T) {
	cfg := defaults()
	err := mergeFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil || !os.IsNotExist(err) {
		t.Errorf("expected os.IsNotExist error, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("GROK_MODEL", "grok-env")
	t.Setenv("XAI_BASE_URL", "http://localhost:9999")

	cfg := defaults()
	applyEnv(cfg)
	if cfg.DefaultModel != "grok-env" {
		t.Errorf("expected env model override, got %q", cfg.DefaultModel)
	}
	if cfg.API.BaseURL != "http://localhost:9999" {
		t.Errorf("expected env base URL override, got %q", cfg.API.BaseURL)
	}
}

func TestAPIKey(t *testing.T) {
	t.Setenv("XAI_API_KEY", "secret")
	cfg := defaults()
	if cfg.APIKey() != "secret" {
		t.Errorf("expected key from XAI_API_KEY, got %q", cfg.APIKey())
	}

	t.Setenv("OTHER_KEY", "other-secret")
	cfg.API.KeyEnv = "OTHER_KEY"
	if cfg.APIKey() != "other-secret" {
		t.Errorf("expected key from custom env var, got %q", cfg.APIKey())
	}
}

func TestHTTPTimeout(t *testing.T) {
	cfg := defaults()
	if cfg.HTTPTimeout() != 60*time.Second {
		t.Errorf("expected 60s default, got %v", cfg.HTTPTimeout())
	}

	cfg.API.Timeout = "2m"
	if cfg.HTTPTimeout() != 2*time.Minute {
		t.Errorf("expected 2m, got %v", cfg.HTTPTimeout())
	}

	cfg.API.Timeout = "bogus"
	if cfg.HTTPTimeout() != 60*time.Second {
		t.Errorf("expected fallback for unparseable timeout, got %v", cfg.HTTPTimeout())
	}
}
