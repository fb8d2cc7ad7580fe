package mcpconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Empty(t, cfg.MCPServers)
}

func TestLoad_ToleratesCommentsAndTrailingCommas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
  // hand-edited by the user
  "mcpServers": {
    "github": {
      "command": "npx",
      "args": ["-y", "@modelcontextprotocol/server-github",],
    },
  },
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Contains(t, cfg.MCPServers, "github")
	require.Equal(t, "npx", cfg.MCPServers["github"].Command)
}

func TestSaveLoad_PreservesUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"globalShortcut": "Ctrl+Space", "mcpServers": {}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.Set("memory", ServerSpec{Command: "npx", Args: []string{"-y", "@modelcontextprotocol/server-memory"}})
	require.NoError(t, cfg.Save(path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Contains(t, reloaded.MCPServers, "memory")
	require.Contains(t, reloaded.Extra, "globalShortcut")
	require.JSONEq(t, `"Ctrl+Space"`, string(reloaded.Extra["globalShortcut"]))
}

func TestSave_OutputIsValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := New()
	cfg.Set("github", ServerSpec{
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-github"},
		Env:     map[string]string{"GITHUB_PERSONAL_ACCESS_TOKEN": "ghp_x"},
	})
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, json.Valid(data), "generated config must be valid JSON")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc, "mcpServers")
}

func TestSave_BacksUpExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"mcpServers": {}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	cfg.Set("memory", ServerSpec{Command: "npx"})
	require.NoError(t, cfg.Save(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	backups := 0
	for _, e := range entries {
		if e.Name() != "config.json" {
			backups++
		}
	}
	require.Equal(t, 1, backups, "expected one backup next to the original")
}

func TestValidate_EmptyCommand(t *testing.T) {
	cfg := New()
	cfg.Set("broken", ServerSpec{})
	require.Error(t, cfg.Validate())
}

func TestRemove(t *testing.T) {
	cfg := New()
	cfg.Set("github", ServerSpec{Command: "npx"})

	require.True(t, cfg.Remove("github"))
	require.False(t, cfg.Remove("github"))
	require.Empty(t, cfg.MCPServers)
}
