package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-zix/pkg/interfaces"
)

const (
	rootModule      = "zix"
	commandsModule  = "zix.commands"
	workspaceModule = "zix.workspace"
)

const (
	fieldSchemaName = "schema_name"
	fieldSchemaFile = "schema_file"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as the "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CommandsLogger returns the logger namespace reserved for command handlers.
func CommandsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, commandsModule)
}

// WorkspaceLogger returns the logger namespace reserved for filesystem access.
func WorkspaceLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, workspaceModule)
}

// WithSchemaContext enriches logger with the schema name and the file backing
// it. Blank values are skipped.
func WithSchemaContext(logger interfaces.Logger, name, filename string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		fields[fieldSchemaName] = trimmed
	}
	if trimmed := strings.TrimSpace(filename); trimmed != "" {
		fields[fieldSchemaFile] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
