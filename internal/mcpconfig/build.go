package mcpconfig

import "github.com/johanlido/ai-mcp-template/internal/catalog"

// SpecFor builds the launch specification for a catalog integration using
// values from the env file. Launch-arg tokens are expanded and each env
// mapping with a value is placed into the server's environment under the
// name the server expects.
func SpecFor(in catalog.Integration, values map[string]string) ServerSpec {
	spec := ServerSpec{
		Command: in.Command,
		Args:    in.ExpandArgs(values),
	}

	for _, e := range in.Env {
		if v := values[e.Key]; v != "" {
			if spec.Env == nil {
				spec.Env = make(map[string]string)
			}
			spec.Env[e.TargetName()] = v
		}
	}

	return spec
}

// Apply sets an entry for every selected integration. Integrations the user
// declined are never touched: they are neither added nor removed, so a
// previously configured server survives an unrelated re-run.
func Apply(cfg *Config, selected []catalog.Integration, values map[string]string) {
	for _, in := range selected {
		cfg.Set(in.Name, SpecFor(in, values))
	}
}
