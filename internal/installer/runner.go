// Package installer executes per-integration install commands. Failures are
// reported, not retried: the wizard warns and continues, leaving remediation
// to the user.
package installer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/johanlido/ai-mcp-template/internal/catalog"
)

// Runner executes install commands with a shared timeout.
type Runner struct {
	timeout time.Duration
}

// NewRunner creates a Runner. A zero timeout falls back to two minutes,
// enough for a cold package-manager download.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Runner{timeout: timeout}
}

// Install runs the integration's install command, streaming package-manager
// output to the user. Integrations without an install spec need nothing
// beyond their launcher (npx and uvx fetch on demand) and return nil.
func (r *Runner) Install(in catalog.Integration) error {
	if len(in.Install) == 0 {
		return nil
	}

	name, args := in.Install[0], in.Install[1:]
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("installer for %s needs %q which is not on PATH: %w", in.Name, name, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("install of %s timed out after %v", in.Name, r.timeout)
		}
		return fmt.Errorf("install of %s failed: %w", in.Name, err)
	}
	return nil
}

// RunCommand runs an arbitrary command with the runner's timeout, returning
// combined output in the error on failure.
func (r *Runner) RunCommand(name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%s timed out after %v", name, r.timeout)
		}
		return fmt.Errorf("%s failed: %w\nOutput: %s", name, err, output)
	}
	return nil
}
