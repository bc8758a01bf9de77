// env.go wires config, API client, directory and logger for every command.
package cli

import (
	"os"

	"github.com/saleslens-dev/saleslens/internal/api"
	"github.com/saleslens-dev/saleslens/internal/config"
	"github.com/saleslens-dev/saleslens/internal/crm"
	"github.com/saleslens-dev/saleslens/internal/log"
)

// Env bundles the shared dependencies every command needs.
type Env struct {
	Cfg       *config.Config
	API       *api.Client
	Directory crm.Directory
	Logger    *log.Logger
}

// loadEnv reads ~/.saleslens/config.yaml (falling back to defaults when
// absent) and builds the API client, directory lookup, and event logger.
// The --api flag overrides the configured base URL.
func loadEnv() (*Env, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	cfg, err := config.ReadConfig(home)
	if err != nil {
		// Not initialized or unreadable: run with defaults.
		cfg = config.DefaultConfig()
	}

	baseURL := cfg.API.BaseURL
	if apiOverride != "" {
		baseURL = apiOverride
	}

	var logger *log.Logger
	if cfg.Log.Enabled {
		// Best-effort: a read-only home directory just disables logging.
		logger, _ = log.NewLogger(home)
	}

	dir := make(crm.StaticDirectory, len(cfg.Directory))
	for _, e := range cfg.Directory {
		dir[e.Name] = crm.Profile{Company: e.Company, Role: e.Role}
	}

	return &Env{
		Cfg:       cfg,
		API:       api.NewClient(baseURL, cfg.API.Timeout()),
		Directory: dir,
		Logger:    logger,
	}, nil
}
