package platform

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Timeout for version probes; a hung interpreter must not stall the wizard.
const versionProbeTimeout = 5 * time.Second

// Binary describes the probe result for a single prerequisite binary.
type Binary struct {
	Name     string
	Present  bool
	Path     string
	Version  string
	Required bool
}

// Probe looks up a binary on PATH and, when found, captures its version
// output. Version capture is best effort: a binary that refuses --version
// is still reported as present.
func Probe(name string, required bool) Binary {
	b := Binary{Name: name, Required: required}

	path, err := exec.LookPath(name)
	if err != nil {
		return b
	}
	b.Present = true
	b.Path = path
	b.Version = probeVersion(path)
	return b
}

// ProbeAll probes the required set followed by the optional set.
func ProbeAll(required, optional []string) []Binary {
	results := make([]Binary, 0, len(required)+len(optional))
	for _, name := range required {
		results = append(results, Probe(name, true))
	}
	for _, name := range optional {
		results = append(results, Probe(name, false))
	}
	return results
}

// MissingRequired returns the names of required binaries that were not found.
func MissingRequired(binaries []Binary) []string {
	var missing []string
	for _, b := range binaries {
		if b.Required && !b.Present {
			missing = append(missing, b.Name)
		}
	}
	return missing
}

// probeVersion runs "<path> --version" and returns the first line of output.
func probeVersion(path string) string {
	ctx, cancel := context.WithTimeout(context.Background(), versionProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, "--version")
	output, err := cmd.Output()
	if err != nil {
		return ""
	}

	line := strings.TrimSpace(string(output))
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	return line
}
