package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johanlido/ai-mcp-template/internal/catalog"
	"github.com/johanlido/ai-mcp-template/internal/envfile"
	"github.com/johanlido/ai-mcp-template/internal/terminal"
	"github.com/johanlido/ai-mcp-template/internal/ui"
)

func newEnvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Manage the .env credentials file",
	}

	cmd.AddCommand(newEnvInitCmd(), newEnvSetCmd(), newEnvCheckCmd())
	return cmd
}

func newEnvSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [KEY]",
		Short: "Set a single credential in the .env file",
		Long: `Updates one key in the .env file, creating the file if needed.

Without a KEY argument an interactive menu of the catalog's known keys is
shown. Secret values are read without echo. They can also be piped:

  echo $TOKEN | aimcp env set GITHUB_TOKEN --value-stdin

or exported under the same name before running the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEnvSet,
	}

	cmd.Flags().String("env-file", "", "Path to the .env file (default .env)")
	cmd.Flags().Bool("value-stdin", false, "Read the value from stdin instead of prompting")

	return cmd
}

func runEnvSet(cmd *cobra.Command, args []string) error {
	envFileFlag, _ := cmd.Flags().GetString("env-file")
	valueStdin, _ := cmd.Flags().GetBool("value-stdin")

	app, err := loadApp(envFileFlag, "")
	if err != nil {
		return err
	}

	known := knownEnvVars(app.cat)

	var spec catalog.EnvVar
	if len(args) == 1 {
		spec = catalog.EnvVar{Key: args[0], Prompt: args[0], Secret: true}
		for _, e := range known {
			if e.Key == args[0] {
				spec = e
				break
			}
		}
	} else {
		if !terminal.IsTerminal() {
			return fmt.Errorf("KEY argument is required when stdin is not a terminal")
		}
		options := make([]string, len(known))
		for i, e := range known {
			options[i] = fmt.Sprintf("%s (%s)", e.Key, e.Prompt)
		}
		idx, err := terminal.PromptChoice("Which credential do you want to set?", options, 0)
		if err != nil {
			return err
		}
		spec = known[idx]
	}

	var value string
	if spec.Secret || valueStdin {
		value, err = terminal.ReadSecretMultiSource(valueStdin, spec.Key, fmt.Sprintf("%s: ", spec.Prompt))
	} else {
		value, err = terminal.PromptString(spec.Prompt, "")
	}
	if err != nil {
		return err
	}
	if value == "" {
		return fmt.Errorf("empty value for %s; nothing written", spec.Key)
	}

	existing := ""
	if data, err := os.ReadFile(app.envFile); err == nil {
		existing = string(data)
	}
	updated := envfile.Set(existing, spec.Key, value)
	if err := envfile.Write(app.envFile, updated, true); err != nil {
		return err
	}

	fmt.Printf("Set %s in %s\n", spec.Key, app.envFile)
	return nil
}

// knownEnvVars flattens the catalog's env mappings, first occurrence wins.
func knownEnvVars(cat *catalog.Catalog) []catalog.EnvVar {
	var vars []catalog.EnvVar
	seen := make(map[string]bool)
	for _, in := range cat.Integrations {
		for _, e := range in.Env {
			if !seen[e.Key] {
				seen[e.Key] = true
				vars = append(vars, e)
			}
		}
	}
	return vars
}

func newEnvInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a fresh .env from the embedded template",
		Long: `Writes the .env template with empty values for every known key.

An existing file is never overwritten unless you confirm interactively or
pass --force.`,
		RunE: runEnvInit,
	}

	cmd.Flags().String("env-file", "", "Path to the .env file (default .env)")
	cmd.Flags().Bool("force", false, "Overwrite an existing file without asking")

	return cmd
}

func runEnvInit(cmd *cobra.Command, args []string) error {
	envFileFlag, _ := cmd.Flags().GetString("env-file")
	force, _ := cmd.Flags().GetBool("force")

	app, err := loadApp(envFileFlag, "")
	if err != nil {
		return err
	}

	content := envfile.Render(nil)
	err = envfile.Write(app.envFile, content, force)
	if err == nil {
		fmt.Printf("Wrote %s\n", app.envFile)
		fmt.Println(ui.Dim.Render("Fill in the values for the integrations you plan to enable."))
		return nil
	}
	if !errors.Is(err, envfile.ErrExists) {
		return err
	}

	// file exists: confirm before replacing
	overwrite, promptErr := terminal.PromptYesNo(
		fmt.Sprintf("%s already exists. Overwrite it?", app.envFile), false)
	if promptErr != nil {
		return promptErr
	}
	if !overwrite {
		fmt.Println("Aborted; existing file left untouched.")
		return nil
	}

	if err := envfile.Write(app.envFile, content, true); err != nil {
		return err
	}
	fmt.Printf("Replaced %s\n", app.envFile)
	return nil
}

func newEnvCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report missing credentials for configured integrations",
		RunE:  runEnvCheck,
	}

	cmd.Flags().String("env-file", "", "Path to the .env file (default .env)")

	return cmd
}

func runEnvCheck(cmd *cobra.Command, args []string) error {
	envFileFlag, _ := cmd.Flags().GetString("env-file")

	app, err := loadApp(envFileFlag, "")
	if err != nil {
		return err
	}

	incomplete := 0
	for _, in := range app.cat.Integrations {
		required := in.RequiredEnvKeys()
		if len(required) == 0 {
			continue
		}
		missing := envfile.MissingKeys(app.envFile, required)
		if len(missing) == 0 {
			fmt.Printf("%s %s\n", ui.OK(), in.Name)
		} else {
			fmt.Printf("%s %s: missing %s\n", ui.Warn(), in.Name, strings.Join(missing, ", "))
			incomplete++
		}
	}

	if incomplete > 0 {
		fmt.Println()
		fmt.Printf("Edit %s to fill in the missing values.\n", app.envFile)
	}
	return nil
}
