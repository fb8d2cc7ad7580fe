// Package config loads aimcp's own settings from the process environment.
// A .env file in the working directory is honored when present so the tool
// can be driven non-interactively from the same file it generates.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

// Settings controls aimcp behavior. Every field has a working default; none
// are required, since the wizard is expected to run on a blank machine.
type Settings struct {
	EnvFile        string        `env:"AIMCP_ENV_FILE" default:".env"`
	ConfigPath     string        `env:"AIMCP_CONFIG_PATH"`
	CommandTimeout time.Duration `env:"AIMCP_COMMAND_TIMEOUT" default:"120s"`
	AssumeYes      bool          `env:"AIMCP_ASSUME_YES" default:"false"`
	SkipInstall    bool          `env:"AIMCP_SKIP_INSTALL" default:"false"`
}

// Load reads settings from the environment, after loading a local .env file
// if one exists. A missing .env is not an error.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	var s Settings
	if err := env.Load(&s, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment settings: %w", err)
	}

	if err := validate(&s); err != nil {
		return nil, err
	}

	return &s, nil
}

func validate(s *Settings) error {
	if s.EnvFile == "" {
		return fmt.Errorf("AIMCP_ENV_FILE must not be empty")
	}
	if s.CommandTimeout <= 0 {
		return fmt.Errorf("AIMCP_COMMAND_TIMEOUT must be positive, got %s", s.CommandTimeout)
	}
	return nil
}
