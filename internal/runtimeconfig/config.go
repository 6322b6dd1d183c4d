package runtimeconfig

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrWorkspaceDirRequired = errors.New("zix config: workspace directory is required")
var ErrLoggingProviderUnknown = errors.New("zix config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("zix config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("zix config: logging format is invalid")

// Config aggregates the runtime options of the zix CLI. Every field has a
// usable default so the configuration file is optional.
type Config struct {
	Workspace WorkspaceConfig `yaml:"workspace"`
	Docs      DocsConfig      `yaml:"docs"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WorkspaceConfig selects where schema and documentation files live.
type WorkspaceConfig struct {
	Dir string `yaml:"dir"`
}

// DocsConfig controls documentation output beyond the Markdown file.
type DocsConfig struct {
	// HTML writes a "<name>_docs.html" preview on every generate-docs run.
	HTML       bool     `yaml:"html"`
	Extensions []string `yaml:"extensions"`
	HardWraps  bool     `yaml:"hard_wraps"`
	Unsafe     bool     `yaml:"unsafe"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	return Config{
		Workspace: WorkspaceConfig{
			Dir: ".",
		},
		Docs: DocsConfig{
			Extensions: []string{"gfm"},
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "warn",
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("zix config: open %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("zix config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML from r on top of DefaultConfig. Unknown keys are
// rejected. An empty document yields the defaults.
func Decode(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Workspace.Dir) == "" {
		return ErrWorkspaceDirRequired
	}
	provider := NormalizeProvider(cfg.Logging.Provider)
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// NormalizeProvider lower-cases provider and maps blank to "console".
func NormalizeProvider(provider string) string {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		return "console"
	}
	return provider
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
