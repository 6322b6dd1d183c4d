// Package validation checks persisted schema descriptors against the
// structural JSON Schema they are written with.
package validation

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const descriptorResource = "descriptor.schema.json"

//go:embed descriptor.schema.json
var descriptorSchema []byte

var (
	ErrSchemaInvalid    = errors.New("descriptor schema invalid")
	ErrSchemaValidation = errors.New("descriptor validation failed")
)

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with their JSON pointer
// locations, e.g. "#/endpoints/0: missing properties: 'method'".
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrSchemaValidation.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// DescriptorSchema returns the compiled descriptor schema. Compilation runs
// once per process.
func DescriptorSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(descriptorResource, bytes.NewReader(descriptorSchema)); err != nil {
			compileErr = fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
			return
		}
		compiled, compileErr = compiler.Compile(descriptorResource)
		if compileErr != nil {
			compileErr = fmt.Errorf("%w: %v", ErrSchemaInvalid, compileErr)
		}
	})
	return compiled, compileErr
}

// ValidateDescriptor checks raw JSON against the descriptor schema. Malformed
// JSON is reported as a PayloadValidationError with a single root issue.
func ValidateDescriptor(raw []byte) error {
	schema, err := DescriptorSchema()
	if err != nil {
		return err
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return &PayloadValidationError{
			Issues: []ValidationIssue{{Location: "#", Message: err.Error()}},
			Cause:  err,
		}
	}

	if err := schema.Validate(payload); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
