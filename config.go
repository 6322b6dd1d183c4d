package zix

import "github.com/goliatone/go-zix/internal/runtimeconfig"

var (
	ErrWorkspaceDirRequired   = runtimeconfig.ErrWorkspaceDirRequired
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config          = runtimeconfig.Config
	WorkspaceConfig = runtimeconfig.WorkspaceConfig
	DocsConfig      = runtimeconfig.DocsConfig
	LoggingConfig   = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
