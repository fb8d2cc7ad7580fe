package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johanlido/ai-mcp-template/internal/state"
	"github.com/johanlido/ai-mcp-template/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show environment status",
		RunE:  runStatus,
	}

	cmd.Flags().String("env-file", "", "Path to the .env file (default .env)")
	cmd.Flags().String("config", "", "Path to the orchestrator config (auto-detected if not specified)")

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	envFileFlag, _ := cmd.Flags().GetString("env-file")
	configFlag, _ := cmd.Flags().GetString("config")

	app, err := loadApp(envFileFlag, configFlag)
	if err != nil {
		return err
	}

	detector := state.NewDetector(app.envFile, app.configPath, app.cat)
	st := detector.Detect()

	fmt.Println(ui.Title.Render("AI Environment Status"))
	fmt.Println(ui.Separator(50))
	fmt.Println()

	if st.EnvFileExists {
		fmt.Printf("Env file:   %s (exists)\n", st.EnvFilePath)
	} else {
		fmt.Printf("Env file:   %s (not found)\n", st.EnvFilePath)
	}

	switch {
	case st.ConfigExists && st.ConfigValid:
		fmt.Printf("Config:     %s (valid)\n", st.ConfigPath)
	case st.ConfigExists:
		fmt.Printf("Config:     %s %s\n", st.ConfigPath, ui.Error.Render("(invalid JSON)"))
	default:
		fmt.Printf("Config:     %s (not found)\n", st.ConfigPath)
	}

	fmt.Println()
	fmt.Println(ui.Title.Render("Integrations"))
	for _, s := range st.Servers {
		var marks string
		switch {
		case s.Configured && s.EnvComplete:
			marks = ui.OK()
		case s.Configured:
			marks = ui.Warn() + ui.Dim.Render(" missing credentials")
		default:
			marks = ui.Dim.Render("not configured")
		}
		fmt.Printf("  %-14s %s\n", s.Name, marks)
	}

	if !st.ConfigExists || !st.EnvFileExists {
		fmt.Println()
		fmt.Println(ui.Dim.Render("Run 'aimcp setup' to bootstrap the environment."))
	}

	return nil
}
