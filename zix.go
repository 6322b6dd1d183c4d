package zix

import (
	"context"
	"io"

	command "github.com/goliatone/go-command"
	schemascmd "github.com/goliatone/go-zix/internal/commands/schemas"
	"github.com/goliatone/go-zix/internal/di"
	"github.com/goliatone/go-zix/internal/schema"
	"github.com/goliatone/go-zix/internal/workspace"
	"github.com/goliatone/go-zix/pkg/interfaces"
)

// Schema is the persisted API descriptor.
type Schema = schema.Schema

// Endpoint is a single entry of Schema.Endpoints.
type Endpoint = schema.Endpoint

// CreateSchemaCommand writes "<name>.json".
type CreateSchemaCommand = schemascmd.CreateSchemaCommand

// ListSchemasCommand prints the schema files of the workspace.
type ListSchemasCommand = schemascmd.ListSchemasCommand

// GenerateDocsCommand renders "<name>.json" into "<name>_docs.md".
type GenerateDocsCommand = schemascmd.GenerateDocsCommand

// Option customises module wiring.
type Option = di.Option

var (
	// ErrNotFound matches reads of missing workspace files.
	ErrNotFound = workspace.ErrNotFound
	// ErrDecode matches schema files that are not valid descriptors.
	ErrDecode = schema.ErrDecode
	// ErrClosed is returned when dispatching through a closed module.
	ErrClosed = di.ErrContainerClosed
)

// WithLoggerProvider overrides the provider selected from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return di.WithLoggerProvider(provider)
}

// WithLogWriter redirects console log output. Defaults to os.Stderr.
func WithLogWriter(w io.Writer) Option {
	return di.WithLogWriter(w)
}

// WithOutput sets where command status lines go. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return di.WithOutput(w)
}

// WithWorkspace replaces the filesystem workspace.
func WithWorkspace(ws interfaces.Workspace) Option {
	return di.WithWorkspace(ws)
}

// WithDispatcherSubscription also subscribes the handlers to the process-wide
// go-command dispatcher. Enable it for at most one module per process.
func WithDispatcherSubscription() Option {
	return di.WithDispatcherSubscription()
}

// Module represents the top level zix runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module with its own workspace and command handlers.
// Call Close when done.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Workspace returns the workspace the handlers read from and write to.
func (m *Module) Workspace() interfaces.Workspace {
	return m.container.Workspace()
}

// Close releases any dispatcher subscriptions. Later dispatches fail with ErrClosed.
func (m *Module) Close() {
	m.container.Close()
}

// Dispatch executes msg on m's handlers.
func (m *Module) Dispatch(ctx context.Context, msg command.Message) error {
	if m == nil {
		return ErrClosed
	}
	return m.container.Dispatch(ctx, msg)
}

// CreateSchema dispatches a CreateSchemaCommand.
func (m *Module) CreateSchema(ctx context.Context, name, version string, endpoints ...string) error {
	return m.Dispatch(ctx, CreateSchemaCommand{Name: name, Version: version, Endpoints: endpoints})
}

// ListSchemas dispatches a ListSchemasCommand.
func (m *Module) ListSchemas(ctx context.Context) error {
	return m.Dispatch(ctx, ListSchemasCommand{})
}

// GenerateDocs dispatches a GenerateDocsCommand.
func (m *Module) GenerateDocs(ctx context.Context, name string, html bool) error {
	return m.Dispatch(ctx, GenerateDocsCommand{Name: name, HTML: html})
}
