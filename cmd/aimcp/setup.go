package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johanlido/ai-mcp-template/internal/catalog"
	"github.com/johanlido/ai-mcp-template/internal/constants"
	"github.com/johanlido/ai-mcp-template/internal/doctor"
	"github.com/johanlido/ai-mcp-template/internal/envfile"
	"github.com/johanlido/ai-mcp-template/internal/installer"
	"github.com/johanlido/ai-mcp-template/internal/mcpconfig"
	"github.com/johanlido/ai-mcp-template/internal/platform"
	"github.com/johanlido/ai-mcp-template/internal/terminal"
	"github.com/johanlido/ai-mcp-template/internal/ui"
)

func newSetupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the interactive setup wizard",
		Long: `Walks through the full environment bootstrap:

  1. Prerequisite check (node, python3, git)
  2. Integration selection
  3. Credentials (.env) file
  4. Component installation
  5. Orchestrator configuration
  6. Health check

Non-interactive runs (piped stdin or --yes) take the default answer for
every prompt and never overwrite an existing .env file.`,
		RunE: runSetup,
	}

	cmd.Flags().Bool("yes", false, "Accept the default answer for every prompt")
	cmd.Flags().String("env-file", "", "Path to the .env file (default .env)")
	cmd.Flags().String("config", "", "Path to the orchestrator config (auto-detected if not specified)")
	cmd.Flags().Bool("skip-install", false, "Skip component installation")
	cmd.Flags().Bool("force", false, "Replace an existing .env instead of merging into it")

	return cmd
}

func runSetup(cmd *cobra.Command, args []string) error {
	if !platform.IsSupported() {
		return fmt.Errorf("setup supports macOS and Linux only (detected %s)", platform.Detect())
	}

	assumeYes, _ := cmd.Flags().GetBool("yes")
	envFileFlag, _ := cmd.Flags().GetString("env-file")
	configFlag, _ := cmd.Flags().GetString("config")
	skipInstall, _ := cmd.Flags().GetBool("skip-install")
	force, _ := cmd.Flags().GetBool("force")

	app, err := loadApp(envFileFlag, configFlag)
	if err != nil {
		return err
	}
	assumeYes = assumeYes || app.settings.AssumeYes
	skipInstall = skipInstall || app.settings.SkipInstall
	interactive := terminal.IsTerminal() && !assumeYes

	fmt.Println()
	fmt.Println(ui.Title.Render("AI Environment Setup"))
	fmt.Println(ui.Separator(50))
	fmt.Println()

	// Step 1: Prerequisites
	fmt.Println(ui.Title.Render("Step 1: Prerequisites"))
	binaries := platform.ProbeAll(constants.RequiredBinaries, constants.OptionalBinaries)
	for _, b := range binaries {
		switch {
		case b.Present:
			fmt.Printf("%s %s %s\n", ui.OK(), b.Name, ui.Dim.Render(b.Version))
		case b.Required:
			fmt.Printf("%s %s not found\n", ui.Fail(), b.Name)
		default:
			fmt.Printf("%s %s not found %s\n", ui.Warn(), b.Name, ui.Dim.Render("(optional)"))
		}
	}
	if missing := platform.MissingRequired(binaries); len(missing) > 0 {
		return fmt.Errorf("missing required binaries: %v - install them and re-run setup", missing)
	}
	fmt.Println()

	// Step 2: Integration selection
	fmt.Println(ui.Title.Render("Step 2: Integrations"))
	var selected []catalog.Integration
	for _, in := range app.cat.Integrations {
		enable := in.Default
		if interactive {
			question := fmt.Sprintf("Enable %s (%s)?", in.Title, in.Description)
			enable, err = terminal.PromptYesNo(question, in.Default)
			if err != nil {
				return err
			}
		}
		if enable {
			selected = append(selected, in)
		}
	}
	if len(selected) == 0 {
		fmt.Println(ui.Warning.Render("No integrations selected; nothing to configure."))
		return nil
	}
	fmt.Println()

	// Step 3: Credentials
	fmt.Println(ui.Title.Render("Step 3: Credentials"))
	values, err := collectValues(selected, interactive)
	if err != nil {
		return err
	}
	if err := writeEnvFile(app.envFile, values, interactive, force); err != nil {
		return err
	}
	fmt.Println()

	// Step 4: Installation
	if skipInstall {
		fmt.Println(ui.Dim.Render("Skipping component installation."))
	} else {
		fmt.Println(ui.Title.Render("Step 4: Installation"))
		runner := installer.NewRunner(app.settings.CommandTimeout)
		for _, in := range selected {
			if len(in.Install) == 0 {
				continue
			}
			fmt.Printf("Installing %s...\n", in.Title)
			if err := runner.Install(in); err != nil {
				// warn and continue: a failed install leaves the entry in
				// place for npx/uvx to fetch on demand
				fmt.Fprintf(os.Stderr, "%s %v\n", ui.Warn(), err)
			}
		}
	}
	fmt.Println()

	// Step 5: Orchestrator configuration
	fmt.Println(ui.Title.Render("Step 5: Orchestrator configuration"))
	cfg, err := mcpconfig.Load(app.configPath)
	if err != nil {
		return err
	}
	mcpconfig.Apply(cfg, selected, values)
	if err := cfg.Save(app.configPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", app.configPath)
	fmt.Println()

	// Step 6: Health check
	fmt.Println(ui.Title.Render("Step 6: Health check"))
	report := doctor.Run(app.envFile, app.configPath, app.cat)
	for _, c := range report.Checks {
		fmt.Println(c.Render())
	}
	pass, warn, fail := report.Summary()
	fmt.Println()
	fmt.Printf("%d passed, %d warnings, %d failures\n", pass, warn, fail)

	if report.Failed() {
		return fmt.Errorf("setup finished with failing health checks")
	}

	fmt.Println()
	fmt.Println(ui.Success.Render("Setup complete!"))
	fmt.Println("Restart the desktop application to pick up the new configuration.")
	return nil
}

// collectValues prompts for each selected integration's env values. In
// non-interactive runs values come only from the process environment.
func collectValues(selected []catalog.Integration, interactive bool) (map[string]string, error) {
	values := make(map[string]string)
	for _, in := range selected {
		for _, e := range in.Env {
			// a value already exported in the environment wins over prompting
			if v := os.Getenv(e.Key); v != "" {
				values[e.Key] = v
				continue
			}
			if !interactive {
				continue
			}

			var v string
			var err error
			if e.Secret {
				v, err = terminal.ReadSecret(fmt.Sprintf("%s (leave empty to skip): ", e.Prompt))
			} else {
				v, err = terminal.PromptString(e.Prompt, "")
			}
			if err != nil {
				return nil, err
			}
			if v != "" {
				values[e.Key] = v
			}
		}
	}
	return values, nil
}

// writeEnvFile creates or updates the .env file. An existing file is only
// modified after interactive confirmation (merge keeps every value the user
// already has) or with --force; non-interactive runs leave it untouched.
func writeEnvFile(path string, values map[string]string, interactive, force bool) error {
	if _, err := os.Stat(path); err != nil {
		content := envfile.Render(values)
		if err := envfile.Write(path, content, false); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	}

	if force {
		if err := envfile.Write(path, envfile.Render(values), true); err != nil {
			return err
		}
		fmt.Printf("Replaced %s\n", path)
		return nil
	}

	if !interactive {
		fmt.Printf("%s already exists; leaving it untouched (use --force to replace).\n", path)
		return nil
	}

	update, err := terminal.PromptYesNo(
		fmt.Sprintf("%s already exists. Add missing keys to it (existing values are kept)?", path), true)
	if err != nil {
		return err
	}
	if !update {
		fmt.Println(ui.Dim.Render("Leaving " + path + " untouched."))
		return nil
	}

	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read existing env file: %w", err)
	}
	merged, added := envfile.Merge(string(existing), values)
	if len(added) == 0 {
		fmt.Printf("%s already has every key; leaving it untouched.\n", path)
		return nil
	}
	if err := envfile.Write(path, merged, true); err != nil {
		return err
	}
	fmt.Printf("Added %v to %s\n", added, path)
	return nil
}
