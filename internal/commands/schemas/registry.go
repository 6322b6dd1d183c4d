package schemascmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"
	"github.com/goliatone/go-command/runner"
	"github.com/goliatone/go-zix/internal/commands"
	"github.com/goliatone/go-zix/internal/logging"
	"github.com/goliatone/go-zix/pkg/interfaces"
)

// ErrUnknownCommand is returned by Route for messages no handler accepts.
var ErrUnknownCommand = errors.New("schema command: unknown message")

// HandlerSet groups the schema command handlers produced by NewHandlerSet.
type HandlerSet struct {
	Create       *CreateSchemaHandler
	List         *ListSchemasHandler
	GenerateDocs *GenerateDocsHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	docs             DocsOptions
	createOpts       []commands.HandlerOption[CreateSchemaCommand]
	listOpts         []commands.HandlerOption[ListSchemasCommand]
	generateDocsOpts []commands.HandlerOption[GenerateDocsCommand]
}

// WithDocsOptions configures the HTML preview of generate-docs.
func WithDocsOptions(docs DocsOptions) Option {
	return func(cfg *options) {
		cfg.docs = docs
	}
}

// WithCreateHandlerOptions forwards options to the CreateSchemaHandler constructor.
func WithCreateHandlerOptions(opts ...commands.HandlerOption[CreateSchemaCommand]) Option {
	return func(cfg *options) {
		cfg.createOpts = append(cfg.createOpts, opts...)
	}
}

// WithListHandlerOptions forwards options to the ListSchemasHandler constructor.
func WithListHandlerOptions(opts ...commands.HandlerOption[ListSchemasCommand]) Option {
	return func(cfg *options) {
		cfg.listOpts = append(cfg.listOpts, opts...)
	}
}

// WithGenerateDocsHandlerOptions forwards options to the GenerateDocsHandler constructor.
func WithGenerateDocsHandlerOptions(opts ...commands.HandlerOption[GenerateDocsCommand]) Option {
	return func(cfg *options) {
		cfg.generateDocsOpts = append(cfg.generateDocsOpts, opts...)
	}
}

// NewHandlerSet builds the schema command handlers around ws. Status lines
// are written to out.
func NewHandlerSet(ws interfaces.Workspace, out io.Writer, provider interfaces.LoggerProvider, opts ...Option) (*HandlerSet, error) {
	if ws == nil {
		return nil, errors.New("schema command registration: workspace is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "schemas")

	return &HandlerSet{
		Create:       NewCreateSchemaHandler(ws, out, logger, cfg.createOpts...),
		List:         NewListSchemasHandler(ws, out, logger, cfg.listOpts...),
		GenerateDocs: NewGenerateDocsHandler(ws, out, logger, cfg.docs, cfg.generateDocsOpts...),
	}, nil
}

// Subscription detaches a handler from the dispatcher.
type Subscription interface {
	Unsubscribe()
}

// Route executes msg on the handler of this set that accepts its type. It
// never goes through the process-wide dispatcher, so two sets never see each
// other's messages.
func (s *HandlerSet) Route(ctx context.Context, msg command.Message) error {
	if s == nil {
		return ErrUnknownCommand
	}
	switch m := msg.(type) {
	case CreateSchemaCommand:
		return s.Create.Execute(ctx, m)
	case *CreateSchemaCommand:
		return s.Create.Execute(ctx, *m)
	case ListSchemasCommand:
		return s.List.Execute(ctx, m)
	case *ListSchemasCommand:
		return s.List.Execute(ctx, *m)
	case GenerateDocsCommand:
		return s.GenerateDocs.Execute(ctx, m)
	case *GenerateDocsCommand:
		return s.GenerateDocs.Execute(ctx, *m)
	case nil:
		return ErrUnknownCommand
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command.GetMessageType(msg))
	}
}

// Subscribe attaches every handler in the set to the go-command dispatcher.
// Failed executions are not retried. Runner errors go to logger at debug
// level since the handlers log their own failures.
func (s *HandlerSet) Subscribe(logger interfaces.Logger) []Subscription {
	if s == nil {
		return nil
	}
	logger = commands.EnsureLogger(logger)
	onError := runner.WithErrorHandler(func(err error) {
		logging.WithError(logger, err).Debug("schemas.command.dispatch.failed")
	})
	return []Subscription{
		dispatcher.SubscribeCommand(s.Create, runner.WithMaxRetries(0), onError),
		dispatcher.SubscribeCommand(s.List, runner.WithMaxRetries(0), onError),
		dispatcher.SubscribeCommand(s.GenerateDocs, runner.WithMaxRetries(0), onError),
	}
}
