package mcpconfig

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johanlido/ai-mcp-template/internal/catalog"
)

func TestSpecFor_GitHub(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	gh, _ := cat.Get("github")

	spec := SpecFor(gh, map[string]string{"GITHUB_TOKEN": "ghp_x"})
	require.Equal(t, "npx", spec.Command)
	require.Equal(t, map[string]string{"GITHUB_PERSONAL_ACCESS_TOKEN": "ghp_x"}, spec.Env)
}

func TestSpecFor_NoValues(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	mem, _ := cat.Get("memory")

	spec := SpecFor(mem, nil)
	require.Equal(t, "npx", spec.Command)
	require.Nil(t, spec.Env)
}

// Declining an integration must leave it out of the generated configuration.
func TestApply_DeclinedIntegrationAbsent(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	gh, _ := cat.Get("github")
	selected := []catalog.Integration{gh} // brave-search declined

	cfg := New()
	Apply(cfg, selected, map[string]string{"GITHUB_TOKEN": "ghp_x"})

	require.Contains(t, cfg.MCPServers, "github")
	require.NotContains(t, cfg.MCPServers, "brave-search")

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, cfg.Save(path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.NotContains(t, reloaded.MCPServers, "brave-search")
}

func TestApply_PreservesUnrelatedEntries(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	gh, _ := cat.Get("github")

	cfg := New()
	cfg.Set("custom-server", ServerSpec{Command: "python3", Args: []string{"server.py"}})

	Apply(cfg, []catalog.Integration{gh}, nil)
	require.Contains(t, cfg.MCPServers, "custom-server")
	require.Contains(t, cfg.MCPServers, "github")
}
