// Package mcpconfig reads and writes the desktop orchestrator's JSON
// configuration: a top-level mapping of service name to launch
// specification. The file is owned by the desktop application; aimcp edits
// only the mcpServers section and preserves everything else verbatim.
package mcpconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/johanlido/ai-mcp-template/internal/constants"
)

// ServerSpec is the launch specification for a single service integration.
type ServerSpec struct {
	Command string            `json:"command"`
	Args    []string          `json:"args,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// Config models the orchestrator configuration file. Top-level fields other
// than mcpServers are unknown to aimcp and survive a load/save round trip.
type Config struct {
	MCPServers map[string]ServerSpec
	Extra      map[string]json.RawMessage
}

// New returns an empty configuration.
func New() *Config {
	return &Config{MCPServers: make(map[string]ServerSpec)}
}

// Load reads the configuration at path. Hand-edited files often carry
// comments or trailing commas, so parsing is jsonc-tolerant; output is
// always strict JSON. A missing file yields an empty configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg := New()
	for key, value := range raw {
		if key != "mcpServers" {
			if cfg.Extra == nil {
				cfg.Extra = make(map[string]json.RawMessage)
			}
			cfg.Extra[key] = value
			continue
		}
		if err := json.Unmarshal(value, &cfg.MCPServers); err != nil {
			return nil, fmt.Errorf("invalid mcpServers section in %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Set adds or replaces a server entry.
func (c *Config) Set(name string, spec ServerSpec) {
	c.MCPServers[name] = spec
}

// Remove deletes a server entry. Returns false if the entry did not exist.
func (c *Config) Remove(name string) bool {
	if _, ok := c.MCPServers[name]; !ok {
		return false
	}
	delete(c.MCPServers, name)
	return true
}

// Validate checks that every entry can be launched and that the whole
// document serializes to valid JSON.
func (c *Config) Validate() error {
	for name, spec := range c.MCPServers {
		if spec.Command == "" {
			return fmt.Errorf("server %q has an empty command", name)
		}
	}
	if _, err := c.Marshal(); err != nil {
		return fmt.Errorf("config does not serialize: %w", err)
	}
	return nil
}

// Marshal renders the configuration as indented JSON, merging preserved
// unknown fields back in alongside mcpServers.
func (c *Config) Marshal() ([]byte, error) {
	doc := make(map[string]any, len(c.Extra)+1)
	for key, value := range c.Extra {
		doc[key] = value
	}
	doc["mcpServers"] = c.MCPServers

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Save writes the configuration atomically. A pre-existing file is backed
// up next to the original before being replaced.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := backup(path); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(dir, constants.ClientConfigFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp config: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set config permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace config: %w", err)
	}
	return nil
}

// backup copies the current file to <path>.bak-<timestamp>.
func backup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config for backup: %w", err)
	}
	backupPath := fmt.Sprintf("%s.bak-%s", path, time.Now().Format("20060102-150405"))
	if err := os.WriteFile(backupPath, data, constants.FilePermissions); err != nil {
		return fmt.Errorf("failed to back up config: %w", err)
	}
	return nil
}
