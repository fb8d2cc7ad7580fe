package constants

import "os"

// EnvFileName is the default name of the credentials file.
const EnvFileName = ".env"

// Desktop orchestrator constants
const (
	// ClientDirName is the desktop client's configuration directory name.
	ClientDirName = "Claude"

	// ClientConfigFile is the orchestrator configuration filename.
	ClientConfigFile = "claude_desktop_config.json"

	// ConfigPathEnvVar overrides the resolved orchestrator config path.
	ConfigPathEnvVar = "AIMCP_CONFIG_PATH"
)

// Prerequisite binaries
var (
	// RequiredBinaries must be present for setup to proceed.
	RequiredBinaries = []string{"node", "python3", "git"}

	// OptionalBinaries are reported but do not block setup.
	OptionalBinaries = []string{"npm", "npx", "docker", "uvx"}
)

// File permissions
const (
	// DirPermissions is the default permission mode for directories.
	DirPermissions os.FileMode = 0755

	// FilePermissions is the default permission mode for generated config files.
	FilePermissions os.FileMode = 0644

	// SecretFilePermissions is the permission mode for files holding credentials.
	SecretFilePermissions os.FileMode = 0600
)
