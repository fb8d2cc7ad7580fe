package installer

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/johanlido/ai-mcp-template/internal/catalog"
)

func TestInstall_NoSpecIsNoop(t *testing.T) {
	r := NewRunner(time.Second)
	err := r.Install(catalog.Integration{Name: "fetch", Command: "uvx"})
	require.NoError(t, err)
}

func TestInstall_MissingInstaller(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	r := NewRunner(time.Second)
	err := r.Install(catalog.Integration{
		Name:    "github",
		Command: "npx",
		Install: []string{"npm", "install", "-g", "pkg"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "npm")
}

func TestRunCommand_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell required")
	}

	r := NewRunner(5 * time.Second)
	require.NoError(t, r.RunCommand("sh", "-c", "exit 0"))
}

func TestRunCommand_FailureSurfacesOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell required")
	}

	r := NewRunner(5 * time.Second)
	err := r.RunCommand("sh", "-c", "echo broken dependency >&2; exit 3")
	require.Error(t, err)
	require.Contains(t, err.Error(), "broken dependency")
}

func TestRunCommand_Timeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix shell required")
	}

	r := NewRunner(100 * time.Millisecond)
	err := r.RunCommand("sh", "-c", "sleep 5")
	require.Error(t, err)
	require.Contains(t, err.Error(), "timed out")
}
