package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-zix/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if cfg.Workspace.Dir != "." {
		t.Fatalf("expected workspace dir '.', got %q", cfg.Workspace.Dir)
	}
	if cfg.Logging.Level != "warn" || cfg.Logging.Provider != "console" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
}

func TestConfigValidate_RequiresWorkspaceDir(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Workspace.Dir = " "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrWorkspaceDirRequired) {
		t.Fatalf("expected ErrWorkspaceDirRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "syslog"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_BlankProviderMeansConsole(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected blank provider to be accepted, got %v", err)
	}
	if got := runtimeconfig.NormalizeProvider(""); got != "console" {
		t.Fatalf("expected console, got %q", got)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Level = "loud"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigValidate_IgnoresFormatForConsoleProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Format = "xml"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected format to be ignored for console provider, got %v", err)
	}
}

func TestDecode_OverlaysDefaults(t *testing.T) {
	cfg, err := runtimeconfig.Decode(strings.NewReader(`
workspace:
  dir: schemas
docs:
  html: true
logging:
  provider: gologger
  level: debug
  format: json
`))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cfg.Workspace.Dir != "schemas" {
		t.Fatalf("expected workspace dir override, got %q", cfg.Workspace.Dir)
	}
	if !cfg.Docs.HTML {
		t.Fatal("expected docs.html to be true")
	}
	if len(cfg.Docs.Extensions) != 1 || cfg.Docs.Extensions[0] != "gfm" {
		t.Fatalf("expected default extensions to survive, got %v", cfg.Docs.Extensions)
	}
	if cfg.Logging.Provider != "gologger" || cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestDecode_EmptyDocumentYieldsDefaults(t *testing.T) {
	cfg, err := runtimeconfig.Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if cfg.Workspace.Dir != "." {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	if _, err := runtimeconfig.Decode(strings.NewReader("workspace:\n  folder: x\n")); err == nil {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestDecode_ValidatesResult(t *testing.T) {
	_, err := runtimeconfig.Decode(strings.NewReader("logging:\n  level: shout\n"))
	if !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zix.yaml")
	if err := os.WriteFile(path, []byte("docs:\n  extensions: [table]\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := runtimeconfig.Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(cfg.Docs.Extensions) != 1 || cfg.Docs.Extensions[0] != "table" {
		t.Fatalf("unexpected extensions %v", cfg.Docs.Extensions)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := runtimeconfig.Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
