package schemascmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	createMessageType       = "zix.schemas.create"
	listMessageType         = "zix.schemas.list"
	generateDocsMessageType = "zix.schemas.generate_docs"
)

// CreateSchemaCommand builds a schema from its name, version and endpoint
// specs and persists it as "<name>.json".
type CreateSchemaCommand struct {
	// Name identifies the schema and selects the file name.
	Name string `json:"name"`
	// Version is stored verbatim.
	Version string `json:"version"`
	// Endpoints holds "path,method,request_format,response_format" specs.
	// Missing fields are filled with defaults.
	Endpoints []string `json:"endpoints,omitempty"`
}

// Type implements command.Message.
func (CreateSchemaCommand) Type() string { return createMessageType }

// Validate ensures a schema name is present before handlers execute.
func (cmd CreateSchemaCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Name, validation.Required, validation.By(nameRule("zix.schemas.create.name_required"))),
	)
}

// ListSchemasCommand enumerates the schema files of the workspace.
type ListSchemasCommand struct{}

// Type implements command.Message.
func (ListSchemasCommand) Type() string { return listMessageType }

// Validate implements command.Message.
func (ListSchemasCommand) Validate() error { return nil }

// GenerateDocsCommand renders "<name>.json" to Markdown.
type GenerateDocsCommand struct {
	Name string `json:"name"`
	// HTML also writes a goldmark rendered "<name>_docs.html" preview.
	HTML bool `json:"html,omitempty"`
}

// Type implements command.Message.
func (GenerateDocsCommand) Type() string { return generateDocsMessageType }

// Validate ensures a schema name is present before handlers execute.
func (cmd GenerateDocsCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Name, validation.Required, validation.By(nameRule("zix.schemas.generate_docs.name_required"))),
	)
}

func nameRule(code string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, "name is required")
		}
		return nil
	}
}
