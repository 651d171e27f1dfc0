package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/sathariels/Grok-CLI/internal/config"
	"github.com/sathariels/Grok-CLI/internal/grok"
	vlog "github.com/sathariels/Grok-CLI/internal/log"
)

// app bundles the loaded configuration and the remote client. Command bodies
// are methods on app so tests can inject a stub client and capture output.
type app struct {
	cfg    *config.Config
	client grok.Completer
	stdout io.Writer
}

// newApp is the shared entry point for all commands: load config, resolve
// the credential, init logging, build the client.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	key := cfg.APIKey()
	if key == "" {
		return nil, fmt.Errorf("%s not set: export your xAI API key or add it to a .env file", cfg.API.KeyEnv)
	}

	vlog.Init(cfg.LogLevel)

	var client grok.Completer = grok.NewClient(cfg.API.BaseURL, key, cfg.HTTPTimeout())
	if isatty.IsTerminal(os.Stderr.Fd()) {
		client = withSpinner(client)
	}

	return &app{cfg: cfg, client: client, stdout: os.Stdout}, nil
}

// model returns the override if set, otherwise the configured default.
func (a *app) model(override string) string {
	if override != "" {
		return override
	}
	return a.cfg.DefaultModel
}
