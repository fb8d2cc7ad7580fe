package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johanlido/ai-mcp-template/internal/platform"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "aimcp",
		Short: "Bootstrap a local AI-assisted development environment",
		Long:  "Sets up MCP service integrations for the desktop orchestrator: checks prerequisites, writes the .env credentials file, installs components, and generates the client configuration.",
	}

	rootCmd.AddCommand(
		newSetupCmd(),
		newDoctorCmd(),
		newStatusCmd(),
		newEnvCmd(),
		newMCPCmd(),
		newInstallCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("aimcp version %s\n", version)
			fmt.Printf("Platform: %s\n", platform.Detect())
		},
	}
}
