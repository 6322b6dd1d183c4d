package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-zix/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "zix.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "zix.test")

	if len(provider.requested) != 1 || provider.requested[0] != "zix.test" {
		t.Fatalf("expected provider to be asked for zix.test, got %v", provider.requested)
	}
	if len(rec.fields) != 1 || rec.fields[0]["module"] != "zix.test" {
		t.Fatalf("expected module field, got %v", rec.fields)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
	if rec.fields[0]["module"] != rootModule {
		t.Fatalf("expected module field %s, got %v", rootModule, rec.fields[0]["module"])
	}
}

func TestNamedModuleLoggers(t *testing.T) {
	cases := []struct {
		name   string
		build  func(interfaces.LoggerProvider) interfaces.Logger
		module string
	}{
		{"commands", CommandsLogger, commandsModule},
		{"workspace", WorkspaceLogger, workspaceModule},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &stubProvider{logger: &recordingLogger{}}
			_ = tc.build(provider)
			if len(provider.requested) == 0 || provider.requested[0] != tc.module {
				t.Fatalf("expected %s module request, got %v", tc.module, provider.requested)
			}
		})
	}
}

func TestWithSchemaContextSkipsBlankValues(t *testing.T) {
	rec := &recordingLogger{}
	_ = WithSchemaContext(rec, " Users ", "  ")

	if len(rec.fields) != 1 {
		t.Fatalf("expected a single WithFields call, got %d", len(rec.fields))
	}
	fields := rec.fields[0]
	if fields[fieldSchemaName] != "Users" {
		t.Fatalf("expected trimmed schema name, got %v", fields[fieldSchemaName])
	}
	if _, ok := fields[fieldSchemaFile]; ok {
		t.Fatalf("expected blank schema file to be skipped, got %v", fields)
	}
}

func TestWithErrorAddsErrorField(t *testing.T) {
	rec := &recordingLogger{}
	if got := WithError(rec, nil); got != rec {
		t.Fatal("expected nil error to return the same logger")
	}
	_ = WithError(rec, errors.New("boom"))
	if len(rec.fields) != 1 || rec.fields[0]["error"] != "boom" {
		t.Fatalf("expected error field, got %v", rec.fields)
	}
}

func TestContextFieldsMerge(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]any{"a": 1, "b": 1})
	ctx = ContextWithFields(ctx, map[string]any{"b": 2})

	fields := ContextFields(ctx)
	if fields["a"] != 1 || fields["b"] != 2 {
		t.Fatalf("unexpected merged fields %v", fields)
	}

	fields["a"] = 99
	if ContextFields(ctx)["a"] != 1 {
		t.Fatal("expected ContextFields to return a copy")
	}
}
