package state

import (
	"os"

	"github.com/johanlido/ai-mcp-template/internal/catalog"
	"github.com/johanlido/ai-mcp-template/internal/envfile"
	"github.com/johanlido/ai-mcp-template/internal/mcpconfig"
)

// ServerState describes one catalog integration's standing in the local
// environment.
type ServerState struct {
	Name        string
	Title       string
	Configured  bool // present in the orchestrator config
	EnvComplete bool // all required env keys set
}

// EnvironmentState represents the current state of the bootstrapped
// environment.
type EnvironmentState struct {
	EnvFileExists bool
	EnvFilePath   string
	ConfigExists  bool
	ConfigValid   bool
	ConfigPath    string
	Servers       []ServerState
}

// Detector checks the state of the environment.
type Detector struct {
	envFile    string
	configPath string
	cat        *catalog.Catalog
}

// NewDetector creates a new state detector.
func NewDetector(envFile, configPath string, cat *catalog.Catalog) *Detector {
	return &Detector{
		envFile:    envFile,
		configPath: configPath,
		cat:        cat,
	}
}

// Detect checks all aspects of the environment state.
func (d *Detector) Detect() *EnvironmentState {
	st := &EnvironmentState{
		EnvFilePath: d.envFile,
		ConfigPath:  d.configPath,
	}

	if _, err := os.Stat(d.envFile); err == nil {
		st.EnvFileExists = true
	}

	var cfg *mcpconfig.Config
	if _, err := os.Stat(d.configPath); err == nil {
		st.ConfigExists = true
		cfg, err = mcpconfig.Load(d.configPath)
		if err == nil && cfg.Validate() == nil {
			st.ConfigValid = true
		}
	}

	for _, in := range d.cat.Integrations {
		s := ServerState{Name: in.Name, Title: in.Title}
		if cfg != nil {
			_, s.Configured = cfg.MCPServers[in.Name]
		}
		s.EnvComplete = len(envfile.MissingKeys(d.envFile, in.RequiredEnvKeys())) == 0
		st.Servers = append(st.Servers, s)
	}

	return st
}
