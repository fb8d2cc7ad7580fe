package mcpconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/johanlido/ai-mcp-template/internal/constants"
	"github.com/johanlido/ai-mcp-template/internal/platform"
)

// PathResolver resolves the orchestrator config path with priority rules.
type PathResolver struct {
	homeDir string
}

// NewPathResolver creates a new PathResolver.
func NewPathResolver() (*PathResolver, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &PathResolver{homeDir: homeDir}, nil
}

// PlatformDefault returns the desktop client's conventional config path for
// the current platform.
func (p *PathResolver) PlatformDefault() (string, error) {
	switch platform.Detect() {
	case platform.MacOS:
		return filepath.Join(p.homeDir, "Library", "Application Support",
			constants.ClientDirName, constants.ClientConfigFile), nil
	case platform.Linux:
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			configHome = filepath.Join(p.homeDir, ".config")
		}
		return filepath.Join(configHome, constants.ClientDirName, constants.ClientConfigFile), nil
	default:
		return "", fmt.Errorf("unsupported platform %q: no known config location", platform.Detect())
	}
}

// Resolve applies the config path priority rules.
// Priority:
//  1. Explicit path (flag) - use exactly what the user specifies
//  2. AIMCP_CONFIG_PATH environment variable
//  3. Platform convention
func (p *PathResolver) Resolve(explicitPath string) (string, error) {
	if explicitPath != "" {
		return explicitPath, nil
	}
	if envPath := os.Getenv(constants.ConfigPathEnvVar); envPath != "" {
		return envPath, nil
	}
	return p.PlatformDefault()
}
