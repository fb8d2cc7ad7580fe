package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_ManifestParses(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, c.Integrations)

	for _, in := range c.Integrations {
		require.NotEmpty(t, in.Name)
		require.NotEmpty(t, in.Title)
		require.NotEmpty(t, in.Command)
	}
}

func TestGet(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	gh, ok := c.Get("github")
	require.True(t, ok)
	require.Equal(t, "npx", gh.Command)
	require.Equal(t, []string{"GITHUB_TOKEN"}, gh.RequiredEnvKeys())

	_, ok = c.Get("no-such-integration")
	require.False(t, ok)
}

func TestEnvVar_TargetName(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	gh, _ := c.Get("github")
	require.Len(t, gh.Env, 1)
	require.Equal(t, "GITHUB_PERSONAL_ACCESS_TOKEN", gh.Env[0].TargetName())

	brave, _ := c.Get("brave-search")
	require.Len(t, brave.Env, 1)
	require.Equal(t, "BRAVE_API_KEY", brave.Env[0].TargetName())
}

func TestExpandArgs(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	fs, _ := c.Get("filesystem")

	args := fs.ExpandArgs(map[string]string{"FILESYSTEM_ALLOWED_DIRS": "/home/dev/projects"})
	require.Equal(t, []string{"-y", "@modelcontextprotocol/server-filesystem", "/home/dev/projects"}, args)

	// empty value drops the positional argument instead of passing ""
	args = fs.ExpandArgs(nil)
	require.Equal(t, []string{"-y", "@modelcontextprotocol/server-filesystem"}, args)
}

func TestNames_Order(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	names := c.Names()
	require.Equal(t, "filesystem", names[0])
	require.Contains(t, names, "github")
}
