package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env in the way

	s, err := Load()
	require.NoError(t, err)
	require.Equal(t, ".env", s.EnvFile)
	require.Equal(t, 120*time.Second, s.CommandTimeout)
	require.False(t, s.AssumeYes)
	require.False(t, s.SkipInstall)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AIMCP_ENV_FILE", "secrets/.env")
	t.Setenv("AIMCP_COMMAND_TIMEOUT", "30s")
	t.Setenv("AIMCP_ASSUME_YES", "true")

	s, err := Load()
	require.NoError(t, err)
	require.Equal(t, "secrets/.env", s.EnvFile)
	require.Equal(t, 30*time.Second, s.CommandTimeout)
	require.True(t, s.AssumeYes)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("AIMCP_COMMAND_TIMEOUT", "-5s")

	_, err := Load()
	require.Error(t, err)
}
