package doctor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johanlido/ai-mcp-template/internal/catalog"
	"github.com/johanlido/ai-mcp-template/internal/mcpconfig"
)

func findCheck(t *testing.T, r Report, name string) HealthCheck {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q not in report", name)
	return HealthCheck{}
}

func TestRun_BlankMachine(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PATH", dir) // nothing installed

	cat, err := catalog.Load()
	require.NoError(t, err)

	r := Run(filepath.Join(dir, ".env"), filepath.Join(dir, "config.json"), cat)

	require.True(t, r.Failed(), "missing required binaries must fail the report")
	require.Equal(t, CheckFail, findCheck(t, r, "binary:node").Status)
	require.Equal(t, CheckWarn, findCheck(t, r, "binary:docker").Status)
	require.Equal(t, CheckWarn, findCheck(t, r, "env-file").Status)
	require.Equal(t, CheckWarn, findCheck(t, r, "client-config").Status)
}

func TestRun_BrokenConfigFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte("{{{{"), 0644))

	cat, err := catalog.Load()
	require.NoError(t, err)

	r := Run(filepath.Join(dir, ".env"), cfgPath, cat)
	require.True(t, r.Failed())
	require.Equal(t, CheckFail, findCheck(t, r, "client-config").Status)
}

func TestRun_ConfiguredServer(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not executable on windows")
	}

	dir := t.TempDir()
	bin := filepath.Join(dir, "bin")
	require.NoError(t, os.MkdirAll(bin, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(bin, "npx"), []byte("#!/bin/sh\nexit 0\n"), 0755))
	t.Setenv("PATH", bin)

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("GITHUB_TOKEN=ghp_x\n"), 0600))

	cfgPath := filepath.Join(dir, "config.json")
	cfg := mcpconfig.New()
	cfg.Set("github", mcpconfig.ServerSpec{Command: "npx", Args: []string{"-y", "@modelcontextprotocol/server-github"}})
	cfg.Set("brave-search", mcpconfig.ServerSpec{Command: "npx"})
	require.NoError(t, cfg.Save(cfgPath))

	cat, err := catalog.Load()
	require.NoError(t, err)

	r := Run(envPath, cfgPath, cat)

	require.Equal(t, CheckPass, findCheck(t, r, "server:github").Status)
	// configured but its required key is missing from the env file
	require.Equal(t, CheckWarn, findCheck(t, r, "server:brave-search").Status)
}

func TestReport_JSONRoundTrip(t *testing.T) {
	r := Report{Checks: []HealthCheck{
		{Name: "binary:node", Status: CheckPass, Message: "node found"},
		{Name: "env-file", Status: CheckWarn, Message: "missing", Fix: "run 'aimcp env init'"},
	}}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	require.True(t, json.Valid(data))
	require.Contains(t, string(data), `"status":"pass"`)
	require.Contains(t, string(data), `"status":"warn"`)
}

func TestReport_Summary(t *testing.T) {
	r := Report{Checks: []HealthCheck{
		{Status: CheckPass}, {Status: CheckPass}, {Status: CheckWarn}, {Status: CheckFail},
	}}
	pass, warn, fail := r.Summary()
	require.Equal(t, 2, pass)
	require.Equal(t, 1, warn)
	require.Equal(t, 1, fail)
	require.True(t, r.Failed())
}
