// Command zix manages API schema descriptors: it creates "<name>.json"
// files, lists them and renders them to Markdown documentation.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-zix"
	"github.com/goliatone/go-zix/cmd/zix/internal/bootstrap"
)

const (
	programName    = "zix"
	programVersion = "Zix CLI 1.0"
)

var moduleBuilder = bootstrap.BuildModule

type runContext struct {
	ctx    context.Context
	module *zix.Module
}

type CreateCmd struct {
	Name      string   `arg:"" help:"Schema name; the file is written as <name>.json."`
	Version   string   `arg:"" help:"Schema version."`
	Endpoints []string `arg:"" optional:"" sep:"none" help:"Endpoints as path,method,request_format,response_format."`
}

func (c *CreateCmd) Run(rc *runContext) error {
	return rc.module.CreateSchema(rc.ctx, c.Name, c.Version, c.Endpoints...)
}

type ListCmd struct{}

func (c *ListCmd) Run(rc *runContext) error {
	return rc.module.ListSchemas(rc.ctx)
}

type GenerateDocsCmd struct {
	Name string `arg:"" help:"Schema name to document."`
	HTML bool   `name:"html" help:"Also write an HTML preview."`
}

func (c *GenerateDocsCmd) Run(rc *runContext) error {
	return rc.module.GenerateDocs(rc.ctx, c.Name, c.HTML)
}

type CLI struct {
	Config   string           `name:"config" placeholder:"FILE" help:"Optional YAML configuration file."`
	LogLevel string           `name:"log-level" placeholder:"LEVEL" help:"Log level (trace, debug, info, warn, error)."`
	Version  kong.VersionFlag `name:"version" help:"Print version information and quit."`

	Create       CreateCmd       `cmd:"" help:"Create a new API schema."`
	List         ListCmd         `cmd:"" help:"List all API schemas."`
	GenerateDocs GenerateDocsCmd `cmd:"" name:"generate-docs" help:"Generate documentation for an API schema."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type exitSignal struct {
	code int
}

func run(args []string, stdout, stderr io.Writer) (code int) {
	if !shouldParse(args) {
		return 0
	}

	defer func() {
		if r := recover(); r != nil {
			signal, ok := r.(exitSignal)
			if !ok {
				panic(r)
			}
			code = signal.code
		}
	}()

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name(programName),
		kong.Description("API Schema Manager"),
		kong.Vars{"version": programVersion},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitSignal{code: code}) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) && parseErr.Context != nil {
			_ = parseErr.Context.PrintUsage(true)
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	module, err := moduleBuilder(bootstrap.Options{
		ConfigPath: cli.Config,
		LogLevel:   cli.LogLevel,
		Output:     stdout,
		LogWriter:  stderr,
	})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	defer module.Close()

	if err := kctx.Run(&runContext{ctx: context.Background(), module: module}); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", rootCause(err))
		return 1
	}
	return 0
}

// rootCause strips the categorised go-errors layers added around a command
// failure so the user sees the underlying message once.
func rootCause(err error) error {
	for {
		wrapped, ok := err.(*goerrors.Error)
		if !ok || wrapped.Source == nil || len(wrapped.ValidationErrors) > 0 {
			return err
		}
		err = wrapped.Source
	}
}

var knownCommands = map[string]bool{
	"create":        true,
	"list":          true,
	"generate-docs": true,
}

var valueFlags = map[string]bool{
	"--config":    true,
	"--log-level": true,
}

// shouldParse reports whether args name a known subcommand or ask for help
// or version output. Anything else is a silent no-op.
func shouldParse(args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return false
		case valueFlags[arg]:
			i++
		case arg == "-h" || arg == "--help" || arg == "--version":
			return true
		case strings.HasPrefix(arg, "-"):
			// boolean or --flag=value
		default:
			return knownCommands[arg]
		}
	}
	return false
}
