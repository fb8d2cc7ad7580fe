// Package catalog describes the MCP service integrations the wizard knows
// how to set up. The registry ships embedded in the binary so setup works
// offline and the set of offered integrations is fixed per release.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed catalog.toml
var manifest string

// EnvVar maps a key in the env file onto the environment variable a server
// process expects.
type EnvVar struct {
	Key      string `toml:"key"`
	Target   string `toml:"target"`
	Prompt   string `toml:"prompt"`
	Secret   bool   `toml:"secret"`
	Required bool   `toml:"required"`
}

// TargetName returns the variable name to set in the server's environment.
func (e EnvVar) TargetName() string {
	if e.Target != "" {
		return e.Target
	}
	return e.Key
}

// Integration is one catalog entry: how to launch a server, what it needs
// from the env file, and how to pre-install it.
type Integration struct {
	Name        string   `toml:"name"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Command     string   `toml:"command"`
	Args        []string `toml:"args"`
	Default     bool     `toml:"default"`
	Install     []string `toml:"install"`
	Env         []EnvVar `toml:"env"`
}

// RequiredEnvKeys returns the env-file keys this integration cannot run without.
func (i Integration) RequiredEnvKeys() []string {
	var keys []string
	for _, e := range i.Env {
		if e.Required {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// ExpandArgs substitutes "${KEY}" tokens in the launch args from values.
// Tokens with no value are dropped entirely, so optional positional
// arguments disappear rather than becoming empty strings.
func (i Integration) ExpandArgs(values map[string]string) []string {
	var args []string
	for _, arg := range i.Args {
		if strings.HasPrefix(arg, "${") && strings.HasSuffix(arg, "}") {
			key := arg[2 : len(arg)-1]
			if v := values[key]; v != "" {
				args = append(args, v)
			}
			continue
		}
		args = append(args, arg)
	}
	return args
}

// Catalog is the full ordered registry.
type Catalog struct {
	Integrations []Integration `toml:"integration"`
}

// Load parses the embedded manifest.
func Load() (*Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal([]byte(manifest), &c); err != nil {
		return nil, fmt.Errorf("failed to parse integration catalog: %w", err)
	}
	if len(c.Integrations) == 0 {
		return nil, fmt.Errorf("integration catalog is empty")
	}
	for _, in := range c.Integrations {
		if in.Name == "" || in.Command == "" {
			return nil, fmt.Errorf("catalog entry %q is missing a name or command", in.Name)
		}
	}
	return &c, nil
}

// Get returns the integration with the given name.
func (c *Catalog) Get(name string) (Integration, bool) {
	for _, in := range c.Integrations {
		if in.Name == name {
			return in, true
		}
	}
	return Integration{}, false
}

// Names returns integration names in manifest order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Integrations))
	for i, in := range c.Integrations {
		names[i] = in.Name
	}
	return names
}
