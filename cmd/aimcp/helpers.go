package main

import (
	"github.com/johanlido/ai-mcp-template/internal/catalog"
	"github.com/johanlido/ai-mcp-template/internal/config"
	"github.com/johanlido/ai-mcp-template/internal/mcpconfig"
)

// appEnv bundles the settings, catalog, and resolved artifact paths every
// command needs.
type appEnv struct {
	settings   *config.Settings
	cat        *catalog.Catalog
	envFile    string
	configPath string
}

// loadApp resolves the working context from flags, environment, and
// platform conventions. Flag values win over environment settings.
func loadApp(envFileFlag, configFlag string) (*appEnv, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}

	envFile := envFileFlag
	if envFile == "" {
		envFile = settings.EnvFile
	}

	resolver, err := mcpconfig.NewPathResolver()
	if err != nil {
		return nil, err
	}
	configPath, err := resolver.Resolve(configFlag)
	if err != nil {
		return nil, err
	}

	return &appEnv{
		settings:   settings,
		cat:        cat,
		envFile:    envFile,
		configPath: configPath,
	}, nil
}
