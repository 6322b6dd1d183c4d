package schemascmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-zix/internal/commands"
	"github.com/goliatone/go-zix/internal/logging"
	"github.com/goliatone/go-zix/internal/markdown"
	"github.com/goliatone/go-zix/internal/schema"
	"github.com/goliatone/go-zix/internal/workspace"
	"github.com/goliatone/go-zix/pkg/interfaces"
)

const (
	createOperation       = "schemas.create"
	listOperation         = "schemas.list"
	generateDocsOperation = "schemas.generate_docs"
)

var (
	_ command.Commander[CreateSchemaCommand] = (*CreateSchemaHandler)(nil)
	_ command.Commander[ListSchemasCommand]  = (*ListSchemasHandler)(nil)
	_ command.Commander[GenerateDocsCommand] = (*GenerateDocsHandler)(nil)
)

// CreateSchemaHandler persists new schema descriptors.
type CreateSchemaHandler struct {
	inner *commands.Handler[CreateSchemaCommand]
}

// NewCreateSchemaHandler creates a handler writing into ws and reporting on out.
func NewCreateSchemaHandler(ws interfaces.Workspace, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[CreateSchemaCommand]) *CreateSchemaHandler {
	baseLogger := commands.EnsureLogger(logger)
	out = ensureWriter(out)

	exec := func(ctx context.Context, msg CreateSchemaCommand) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		descriptor := schema.New(msg.Name, msg.Version, msg.Endpoints)
		payload, err := schema.Encode(descriptor)
		if err != nil {
			return err
		}

		filename := workspace.SchemaFilename(msg.Name)
		if err := ws.Write(ctx, filename, payload); err != nil {
			return err
		}

		logging.WithSchemaContext(baseLogger.WithContext(ctx), msg.Name, filename).
			Info("schemas.command.create.completed", "endpoint_count", len(descriptor.Endpoints))
		_, err = fmt.Fprintf(out, "Created schema: %s\n", filename)
		return err
	}

	handlerOpts := []commands.HandlerOption[CreateSchemaCommand]{
		commands.WithLogger[CreateSchemaCommand](baseLogger),
		commands.WithOperation[CreateSchemaCommand](createOperation),
		commands.WithMessageFields(func(msg CreateSchemaCommand) map[string]any {
			return map[string]any{
				"schema_name":    msg.Name,
				"schema_version": msg.Version,
				"endpoint_count": len(msg.Endpoints),
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[CreateSchemaCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreateSchemaHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreateSchemaCommand].
func (h *CreateSchemaHandler) Execute(ctx context.Context, msg CreateSchemaCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ListSchemasHandler prints the schema files found in the workspace.
type ListSchemasHandler struct {
	inner *commands.Handler[ListSchemasCommand]
}

// NewListSchemasHandler creates a handler listing ws entries on out.
func NewListSchemasHandler(ws interfaces.Workspace, out io.Writer, logger interfaces.Logger, opts ...commands.HandlerOption[ListSchemasCommand]) *ListSchemasHandler {
	baseLogger := commands.EnsureLogger(logger)
	out = ensureWriter(out)

	exec := func(ctx context.Context, _ ListSchemasCommand) error {
		entries, err := ws.List(ctx, workspace.SchemaExtension)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if _, err := fmt.Fprintln(out, entry.DisplayPath); err != nil {
				return err
			}
		}
		baseLogger.WithContext(ctx).Debug("schemas.command.list.completed", "count", len(entries))
		return nil
	}

	handlerOpts := []commands.HandlerOption[ListSchemasCommand]{
		commands.WithLogger[ListSchemasCommand](baseLogger),
		commands.WithOperation[ListSchemasCommand](listOperation),
		commands.WithTelemetry(commands.DefaultTelemetry[ListSchemasCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ListSchemasHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[ListSchemasCommand].
func (h *ListSchemasHandler) Execute(ctx context.Context, msg ListSchemasCommand) error {
	return h.inner.Execute(ctx, msg)
}

// GenerateDocsHandler renders stored schemas to Markdown.
type GenerateDocsHandler struct {
	inner *commands.Handler[GenerateDocsCommand]
}

// DocsOptions controls the optional HTML preview written next to the Markdown.
type DocsOptions struct {
	// HTML forces the preview for every invocation, regardless of the message flag.
	HTML bool
	// Preview configures the goldmark conversion.
	Preview markdown.HTMLOptions
}

// NewGenerateDocsHandler creates a handler reading schemas from ws and
// writing documentation back into it.
func NewGenerateDocsHandler(ws interfaces.Workspace, out io.Writer, logger interfaces.Logger, docs DocsOptions, opts ...commands.HandlerOption[GenerateDocsCommand]) *GenerateDocsHandler {
	baseLogger := commands.EnsureLogger(logger)
	out = ensureWriter(out)
	var preview *markdown.GoldmarkParser

	exec := func(ctx context.Context, msg GenerateDocsCommand) error {
		filename := workspace.SchemaFilename(msg.Name)
		raw, err := ws.Read(ctx, filename)
		if err != nil {
			// A name the workspace cannot hold has no schema file either.
			if errors.Is(err, workspace.ErrNotFound) || errors.Is(err, workspace.ErrInvalidName) {
				logging.WithSchemaContext(baseLogger, msg.Name, filename).Info("schemas.command.generate_docs.missing")
				_, err = fmt.Fprintf(out, "Schema file %s not found.\n", filename)
				return err
			}
			return err
		}

		descriptor, err := schema.Decode(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}

		// The output file follows the decoded name, which may differ from the
		// requested one when the file was edited by hand.
		rendered := markdown.RenderDocs(descriptor)
		docsFile := workspace.DocsFilename(descriptor.Name)
		if err := ws.Write(ctx, docsFile, []byte(rendered)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "Documentation generated: %s\n", docsFile); err != nil {
			return err
		}

		if docs.HTML || msg.HTML {
			if preview == nil {
				preview = markdown.NewGoldmarkParser(docs.Preview)
			}
			html, err := preview.Parse([]byte(rendered))
			if err != nil {
				return err
			}
			htmlFile := workspace.HTMLFilename(descriptor.Name)
			if err := ws.Write(ctx, htmlFile, html); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "HTML preview generated: %s\n", htmlFile); err != nil {
				return err
			}
		}

		logging.WithSchemaContext(baseLogger.WithContext(ctx), descriptor.Name, docsFile).
			Info("schemas.command.generate_docs.completed", "endpoint_count", len(descriptor.Endpoints))
		return nil
	}

	handlerOpts := []commands.HandlerOption[GenerateDocsCommand]{
		commands.WithLogger[GenerateDocsCommand](baseLogger),
		commands.WithOperation[GenerateDocsCommand](generateDocsOperation),
		commands.WithMessageFields(func(msg GenerateDocsCommand) map[string]any {
			fields := map[string]any{"schema_name": msg.Name}
			if msg.HTML {
				fields["html"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[GenerateDocsCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateDocsHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[GenerateDocsCommand].
func (h *GenerateDocsHandler) Execute(ctx context.Context, msg GenerateDocsCommand) error {
	return h.inner.Execute(ctx, msg)
}

func ensureWriter(out io.Writer) io.Writer {
	if out == nil {
		return io.Discard
	}
	return out
}
