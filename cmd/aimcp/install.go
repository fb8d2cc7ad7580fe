package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johanlido/ai-mcp-template/internal/installer"
	"github.com/johanlido/ai-mcp-template/internal/ui"
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install <integration...>",
		Short: "Install integration components directly",
		Long: `Runs the install command for the named integrations without the rest
of the wizard. Useful after a failed install step in setup.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runInstall,
	}

	return cmd
}

func runInstall(cmd *cobra.Command, args []string) error {
	app, err := loadApp("", "")
	if err != nil {
		return err
	}

	runner := installer.NewRunner(app.settings.CommandTimeout)
	failures := 0
	for _, name := range args {
		in, ok := app.cat.Get(name)
		if !ok {
			return fmt.Errorf("unknown integration %q (see 'aimcp mcp list')", name)
		}
		if len(in.Install) == 0 {
			fmt.Printf("%s needs no installation (%s fetches it on demand)\n", in.Name, in.Command)
			continue
		}

		fmt.Printf("Installing %s...\n", in.Title)
		if err := runner.Install(in); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", ui.Warn(), err)
			failures++
			continue
		}
		fmt.Printf("%s %s installed\n", ui.OK(), in.Name)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d installs failed", failures, len(args))
	}
	return nil
}
