// Package doctor re-verifies a bootstrapped environment: prerequisite
// binaries, the credentials file, and the orchestrator configuration.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/johanlido/ai-mcp-template/internal/catalog"
	"github.com/johanlido/ai-mcp-template/internal/constants"
	"github.com/johanlido/ai-mcp-template/internal/envfile"
	"github.com/johanlido/ai-mcp-template/internal/mcpconfig"
	"github.com/johanlido/ai-mcp-template/internal/platform"
	"github.com/johanlido/ai-mcp-template/internal/ui"
)

// CheckStatus represents the status of a health check.
type CheckStatus int

const (
	// CheckPass indicates the check passed successfully.
	CheckPass CheckStatus = iota
	// CheckWarn indicates a non-critical issue.
	CheckWarn
	// CheckFail indicates a critical issue.
	CheckFail
)

// String returns the string representation of the check status.
func (s CheckStatus) String() string {
	switch s {
	case CheckPass:
		return "pass"
	case CheckWarn:
		return "warn"
	case CheckFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns the colored status symbol.
func (s CheckStatus) Symbol() string {
	switch s {
	case CheckPass:
		return ui.OK()
	case CheckWarn:
		return ui.Warn()
	case CheckFail:
		return ui.Fail()
	default:
		return "?"
	}
}

// MarshalJSON emits the status as its lowercase string form.
func (s CheckStatus) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// HealthCheck is a single check result.
type HealthCheck struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
	Fix     string      `json:"fix,omitempty"`
}

// Render returns the formatted terminal line for the check, with the fix
// suggestion indented below when the check did not pass.
func (c HealthCheck) Render() string {
	line := fmt.Sprintf("%s %s", c.Status.Symbol(), c.Message)
	if c.Status != CheckPass && c.Fix != "" {
		line += "\n" + ui.Dim.Render("  -> "+c.Fix)
	}
	return line
}

// Report is the result of a full doctor run.
type Report struct {
	Checks []HealthCheck `json:"checks"`
}

// Failed reports whether any check failed outright.
func (r Report) Failed() bool {
	for _, c := range r.Checks {
		if c.Status == CheckFail {
			return true
		}
	}
	return false
}

// Summary returns pass/warn/fail counts.
func (r Report) Summary() (pass, warn, fail int) {
	for _, c := range r.Checks {
		switch c.Status {
		case CheckPass:
			pass++
		case CheckWarn:
			warn++
		case CheckFail:
			fail++
		}
	}
	return
}

// Run executes the full check suite against the given artifact paths.
func Run(envFile, configPath string, cat *catalog.Catalog) Report {
	var r Report

	r.Checks = append(r.Checks, checkBinaries()...)
	r.Checks = append(r.Checks, checkEnvFile(envFile))
	r.Checks = append(r.Checks, checkConfig(envFile, configPath, cat)...)

	return r
}

func checkBinaries() []HealthCheck {
	var checks []HealthCheck
	for _, b := range platform.ProbeAll(constants.RequiredBinaries, constants.OptionalBinaries) {
		c := HealthCheck{Name: "binary:" + b.Name}
		switch {
		case b.Present && b.Version != "":
			c.Status = CheckPass
			c.Message = fmt.Sprintf("%s found (%s)", b.Name, b.Version)
		case b.Present:
			c.Status = CheckPass
			c.Message = fmt.Sprintf("%s found at %s", b.Name, b.Path)
		case b.Required:
			c.Status = CheckFail
			c.Message = fmt.Sprintf("%s not found", b.Name)
			c.Fix = fmt.Sprintf("install %s and re-run", b.Name)
		default:
			c.Status = CheckWarn
			c.Message = fmt.Sprintf("%s not found (optional)", b.Name)
		}
		checks = append(checks, c)
	}
	return checks
}

func checkEnvFile(envFile string) HealthCheck {
	c := HealthCheck{Name: "env-file"}
	if _, err := os.Stat(envFile); err != nil {
		c.Status = CheckWarn
		c.Message = fmt.Sprintf("env file %s not found", envFile)
		c.Fix = "run 'aimcp env init'"
		return c
	}
	c.Status = CheckPass
	c.Message = fmt.Sprintf("env file %s exists", envFile)
	return c
}

func checkConfig(envFile, configPath string, cat *catalog.Catalog) []HealthCheck {
	if _, err := os.Stat(configPath); err != nil {
		return []HealthCheck{{
			Name:    "client-config",
			Status:  CheckWarn,
			Message: fmt.Sprintf("orchestrator config %s not found", configPath),
			Fix:     "run 'aimcp setup' or 'aimcp mcp generate'",
		}}
	}

	cfg, err := mcpconfig.Load(configPath)
	if err != nil {
		return []HealthCheck{{
			Name:    "client-config",
			Status:  CheckFail,
			Message: fmt.Sprintf("orchestrator config does not parse: %v", err),
			Fix:     "run 'aimcp mcp generate' to regenerate it",
		}}
	}
	if err := cfg.Validate(); err != nil {
		return []HealthCheck{{
			Name:    "client-config",
			Status:  CheckFail,
			Message: fmt.Sprintf("orchestrator config is invalid: %v", err),
			Fix:     "run 'aimcp mcp generate' to regenerate it",
		}}
	}

	checks := []HealthCheck{{
		Name:    "client-config",
		Status:  CheckPass,
		Message: fmt.Sprintf("orchestrator config %s is valid JSON", configPath),
	}}

	for name, spec := range cfg.MCPServers {
		c := HealthCheck{Name: "server:" + name}

		if _, err := exec.LookPath(spec.Command); err != nil {
			c.Status = CheckWarn
			c.Message = fmt.Sprintf("%s: command %q not on PATH", name, spec.Command)
			c.Fix = fmt.Sprintf("install %s or remove the entry with 'aimcp mcp remove %s'", spec.Command, name)
			checks = append(checks, c)
			continue
		}

		if in, ok := cat.Get(name); ok {
			if missing := envfile.MissingKeys(envFile, in.RequiredEnvKeys()); len(missing) > 0 {
				c.Status = CheckWarn
				c.Message = fmt.Sprintf("%s: missing env keys %s", name, strings.Join(missing, ", "))
				c.Fix = "fill in the values in " + envFile
				checks = append(checks, c)
				continue
			}
		}

		c.Status = CheckPass
		c.Message = fmt.Sprintf("%s: ready (%s)", name, spec.Command)
		checks = append(checks, c)
	}

	return checks
}
