package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johanlido/ai-mcp-template/internal/catalog"
	"github.com/johanlido/ai-mcp-template/internal/envfile"
	"github.com/johanlido/ai-mcp-template/internal/mcpconfig"
	"github.com/johanlido/ai-mcp-template/internal/ui"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Manage the orchestrator's service integration config",
	}

	cmd.AddCommand(newMCPGenerateCmd(), newMCPListCmd(), newMCPRemoveCmd())
	return cmd
}

func newMCPGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [integration...]",
		Short: "Write orchestrator config entries from the .env file",
		Long: `Builds launch specifications for the named integrations (or every
integration whose required credentials are present in the .env file when no
names are given) and merges them into the orchestrator configuration.
Entries for integrations not named are left untouched.`,
		RunE: runMCPGenerate,
	}

	cmd.Flags().String("env-file", "", "Path to the .env file (default .env)")
	cmd.Flags().String("config", "", "Path to the orchestrator config (auto-detected if not specified)")

	return cmd
}

func runMCPGenerate(cmd *cobra.Command, args []string) error {
	envFileFlag, _ := cmd.Flags().GetString("env-file")
	configFlag, _ := cmd.Flags().GetString("config")

	app, err := loadApp(envFileFlag, configFlag)
	if err != nil {
		return err
	}

	values, err := envfile.Parse(app.envFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		values = map[string]string{}
	}

	var selected []catalog.Integration
	if len(args) > 0 {
		for _, name := range args {
			in, ok := app.cat.Get(name)
			if !ok {
				return fmt.Errorf("unknown integration %q (see 'aimcp mcp list')", name)
			}
			selected = append(selected, in)
		}
	} else {
		for _, in := range app.cat.Integrations {
			if len(envfile.MissingKeys(app.envFile, in.RequiredEnvKeys())) == 0 {
				selected = append(selected, in)
			}
		}
	}
	if len(selected) == 0 {
		return fmt.Errorf("no integrations have complete credentials in %s", app.envFile)
	}

	cfg, err := mcpconfig.Load(app.configPath)
	if err != nil {
		return err
	}
	mcpconfig.Apply(cfg, selected, values)
	if err := cfg.Save(app.configPath); err != nil {
		return err
	}

	names := make([]string, len(selected))
	for i, in := range selected {
		names[i] = in.Name
	}
	fmt.Printf("Wrote %s (%s)\n", app.configPath, strings.Join(names, ", "))
	return nil
}

func newMCPListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known integrations and their configured state",
		RunE:  runMCPList,
	}

	cmd.Flags().String("config", "", "Path to the orchestrator config (auto-detected if not specified)")

	return cmd
}

func runMCPList(cmd *cobra.Command, args []string) error {
	configFlag, _ := cmd.Flags().GetString("config")

	app, err := loadApp("", configFlag)
	if err != nil {
		return err
	}

	cfg, err := mcpconfig.Load(app.configPath)
	if err != nil {
		return err
	}

	for _, in := range app.cat.Integrations {
		mark := ui.Dim.Render("-")
		if _, ok := cfg.MCPServers[in.Name]; ok {
			mark = ui.OK()
		}
		fmt.Printf("%s %-14s %s\n", mark, in.Name, ui.Dim.Render(in.Description))
	}

	// entries in the config that the catalog does not know about
	for name := range cfg.MCPServers {
		if _, ok := app.cat.Get(name); !ok {
			fmt.Printf("%s %-14s %s\n", ui.OK(), name, ui.Dim.Render("(not in catalog)"))
		}
	}

	return nil
}

func newMCPRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <integration>",
		Short: "Remove an integration from the orchestrator config",
		Args:  cobra.ExactArgs(1),
		RunE:  runMCPRemove,
	}

	cmd.Flags().String("config", "", "Path to the orchestrator config (auto-detected if not specified)")

	return cmd
}

func runMCPRemove(cmd *cobra.Command, args []string) error {
	configFlag, _ := cmd.Flags().GetString("config")

	app, err := loadApp("", configFlag)
	if err != nil {
		return err
	}

	cfg, err := mcpconfig.Load(app.configPath)
	if err != nil {
		return err
	}

	name := args[0]
	if !cfg.Remove(name) {
		return fmt.Errorf("no entry named %q in %s", name, app.configPath)
	}
	if err := cfg.Save(app.configPath); err != nil {
		return err
	}

	fmt.Printf("Removed %s from %s\n", name, app.configPath)
	return nil
}
