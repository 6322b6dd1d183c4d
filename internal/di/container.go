package di

import (
	"context"
	"errors"
	"io"
	"os"

	command "github.com/goliatone/go-command"

	schemascmd "github.com/goliatone/go-zix/internal/commands/schemas"
	"github.com/goliatone/go-zix/internal/logging"
	"github.com/goliatone/go-zix/internal/logging/console"
	"github.com/goliatone/go-zix/internal/logging/gologger"
	"github.com/goliatone/go-zix/internal/markdown"
	"github.com/goliatone/go-zix/internal/runtimeconfig"
	"github.com/goliatone/go-zix/internal/workspace"
	"github.com/goliatone/go-zix/pkg/interfaces"
)

// ErrContainerClosed is returned when dispatching through a closed container.
var ErrContainerClosed = errors.New("zix container: closed")

// Container wires the runtime dependencies of the zix CLI.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logWriter      io.Writer
	output         io.Writer
	workspace      interfaces.Workspace

	handlers      *schemascmd.HandlerSet
	subscribe     bool
	subscriptions []schemascmd.Subscription
	closed        bool
}

// Option mutates the container before handlers are built.
type Option func(*Container)

// WithLoggerProvider overrides the provider selected by the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithLogWriter redirects the console logger provider. Defaults to os.Stderr.
func WithLogWriter(w io.Writer) Option {
	return func(c *Container) {
		if w != nil {
			c.logWriter = w
		}
	}
}

// WithOutput sets where command status lines are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Container) {
		if w != nil {
			c.output = w
		}
	}
}

// WithWorkspace replaces the filesystem workspace rooted at Config.Workspace.Dir.
func WithWorkspace(ws interfaces.Workspace) Option {
	return func(c *Container) {
		if ws != nil {
			c.workspace = ws
		}
	}
}

// WithDispatcherSubscription also subscribes the handlers to the process-wide
// go-command dispatcher so hosts can reach them with dispatcher.Dispatch.
// Only one container per process should enable it.
func WithDispatcherSubscription() Option {
	return func(c *Container) {
		c.subscribe = true
	}
}

// NewContainer validates cfg and builds the logger provider, workspace and
// schema command handlers. Close releases any dispatcher subscriptions.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:    cfg,
		logWriter: os.Stderr,
		output:    os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	if c.workspace == nil {
		c.workspace = workspace.New(cfg.Workspace.Dir, logging.WorkspaceLogger(c.loggerProvider))
	}

	handlers, err := schemascmd.NewHandlerSet(c.workspace, c.output, c.loggerProvider,
		schemascmd.WithDocsOptions(schemascmd.DocsOptions{
			HTML: cfg.Docs.HTML,
			Preview: markdown.HTMLOptions{
				Extensions: cfg.Docs.Extensions,
				HardWraps:  cfg.Docs.HardWraps,
				Unsafe:     cfg.Docs.Unsafe,
			},
		}),
	)
	if err != nil {
		return nil, err
	}
	c.handlers = handlers
	if c.subscribe {
		c.subscriptions = handlers.Subscribe(logging.CommandsLogger(c.loggerProvider))
	}

	logging.ModuleLogger(c.loggerProvider, "zix").Debug("container.configured",
		"workspace", cfg.Workspace.Dir,
		"logging_provider", runtimeconfig.NormalizeProvider(cfg.Logging.Provider),
		"docs_html", cfg.Docs.HTML,
		"dispatcher_subscription", c.subscribe,
	)
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil {
		return nil
	}
	logCfg := c.Config.Logging

	switch runtimeconfig.NormalizeProvider(logCfg.Provider) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     logCfg.Level,
			Format:    logCfg.Format,
			AddSource: logCfg.AddSource,
			Focus:     logCfg.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		opts := console.Options{Writer: c.logWriter}
		if level, ok := console.ParseLevel(logCfg.Level); ok {
			opts.MinLevel = &level
		}
		c.loggerProvider = console.NewProvider(opts)
	}
	return nil
}

// Dispatch executes msg on this container's own handlers.
func (c *Container) Dispatch(ctx context.Context, msg command.Message) error {
	if c == nil || c.closed {
		return ErrContainerClosed
	}
	if ctx == nil {
		ctx = context.Background()
	}
	return c.handlers.Route(ctx, msg)
}

// Close marks the container closed and drops its dispatcher subscriptions.
// It is safe to call more than once.
func (c *Container) Close() {
	if c.closed {
		return
	}
	for _, sub := range c.subscriptions {
		sub.Unsubscribe()
	}
	c.subscriptions = nil
	c.closed = true
}

// LoggerProvider returns the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Workspace returns the workspace backing the handlers.
func (c *Container) Workspace() interfaces.Workspace {
	return c.workspace
}

// Handlers exposes the schema command handlers for direct execution.
func (c *Container) Handlers() *schemascmd.HandlerSet {
	return c.handlers
}
