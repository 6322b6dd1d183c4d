package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-zix"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "zix.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestBuildModuleUsesConfigWorkspace(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	module, err := BuildModule(Options{
		ConfigPath: writeConfig(t, "workspace:\n  dir: "+dir+"\n"),
		Output:     &out,
		LogWriter:  &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("BuildModule returned error: %v", err)
	}
	defer module.Close()

	if err := module.CreateSchema(context.Background(), "Users", "1.0"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Users.json")); err != nil {
		t.Fatalf("expected schema in configured workspace: %v", err)
	}
	if out.String() != "Created schema: Users.json\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestBuildModuleLogLevelOverride(t *testing.T) {
	_, err := BuildModule(Options{LogLevel: "chatty", LogWriter: &bytes.Buffer{}})
	if !errors.Is(err, zix.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestBuildModuleMissingConfigFile(t *testing.T) {
	if _, err := BuildModule(Options{ConfigPath: filepath.Join(t.TempDir(), "absent.yaml")}); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
