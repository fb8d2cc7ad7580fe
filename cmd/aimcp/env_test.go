package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johanlido/ai-mcp-template/internal/catalog"
)

func TestKnownEnvVars(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	vars := knownEnvVars(cat)
	require.NotEmpty(t, vars)

	seen := make(map[string]bool)
	for _, e := range vars {
		require.False(t, seen[e.Key], "duplicate key %s", e.Key)
		seen[e.Key] = true
	}
	require.True(t, seen["GITHUB_TOKEN"])
	require.True(t, seen["FILESYSTEM_ALLOWED_DIRS"])

	// secret flags carry through from the manifest
	for _, e := range vars {
		if e.Key == "GITHUB_TOKEN" {
			require.True(t, e.Secret)
		}
	}
}
