package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-zix"
	"github.com/goliatone/go-zix/pkg/interfaces"
)

// Options captures the inputs of a CLI bootstrap.
type Options struct {
	// ConfigPath points at an optional YAML file; blank uses the defaults.
	ConfigPath string
	// LogLevel overrides logging.level from the configuration.
	LogLevel       string
	Output         io.Writer
	LogWriter      io.Writer
	LoggerProvider interfaces.LoggerProvider
}

// BuildModule constructs a zix module for a single CLI invocation.
func BuildModule(opts Options) (*zix.Module, error) {
	cfg := zix.DefaultConfig()
	if path := strings.TrimSpace(opts.ConfigPath); path != "" {
		loaded, err := zix.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}

	moduleOpts := []zix.Option{}
	if opts.Output != nil {
		moduleOpts = append(moduleOpts, zix.WithOutput(opts.Output))
	}
	if opts.LogWriter != nil {
		moduleOpts = append(moduleOpts, zix.WithLogWriter(opts.LogWriter))
	}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, zix.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := zix.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise zix module: %w", err)
	}
	return module, nil
}
