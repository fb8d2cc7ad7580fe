package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johanlido/ai-mcp-template/internal/doctor"
	"github.com/johanlido/ai-mcp-template/internal/ui"
)

func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run environment health checks",
		Long: `Re-verifies the bootstrapped environment: prerequisite binaries,
the .env credentials file, and the orchestrator configuration.

Exits 1 when any check fails.`,
		RunE: runDoctor,
	}

	cmd.Flags().Bool("json", false, "Output results as JSON")
	cmd.Flags().String("env-file", "", "Path to the .env file (default .env)")
	cmd.Flags().String("config", "", "Path to the orchestrator config (auto-detected if not specified)")

	return cmd
}

func runDoctor(cmd *cobra.Command, args []string) error {
	jsonOut, _ := cmd.Flags().GetBool("json")
	envFileFlag, _ := cmd.Flags().GetString("env-file")
	configFlag, _ := cmd.Flags().GetString("config")

	app, err := loadApp(envFileFlag, configFlag)
	if err != nil {
		return err
	}

	report := doctor.Run(app.envFile, app.configPath, app.cat)

	if jsonOut {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(data))
	} else {
		fmt.Println(ui.Title.Render("Environment Health"))
		fmt.Println(ui.Separator(50))
		for _, c := range report.Checks {
			fmt.Println(c.Render())
		}
		pass, warn, fail := report.Summary()
		fmt.Println()
		fmt.Printf("%d passed, %d warnings, %d failures\n", pass, warn, fail)
	}

	if report.Failed() {
		os.Exit(1)
	}
	return nil
}
