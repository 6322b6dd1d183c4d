package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestDescriptorSchemaCompiles(t *testing.T) {
	schema, err := DescriptorSchema()
	if err != nil {
		t.Fatalf("DescriptorSchema returned error: %v", err)
	}
	if schema == nil {
		t.Fatal("expected compiled schema")
	}
}

func TestValidateDescriptorAcceptsWellFormedPayload(t *testing.T) {
	raw := []byte(`{
  "name": "Users",
  "version": "1.0",
  "endpoints": [
    {"path": "/users", "method": "GET", "request_format": "", "response_format": "json"}
  ]
}`)
	if err := ValidateDescriptor(raw); err != nil {
		t.Fatalf("expected payload to validate, got %v", err)
	}
}

func TestValidateDescriptorRejections(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		location string
	}{
		{
			name:     "missing endpoints",
			raw:      `{"name": "Users", "version": "1.0"}`,
			location: "#",
		},
		{
			name:     "unknown top level key",
			raw:      `{"name": "Users", "version": "1.0", "endpoints": [], "owner": "me"}`,
			location: "#",
		},
		{
			name:     "name type mismatch",
			raw:      `{"name": 7, "version": "1.0", "endpoints": []}`,
			location: "#/name",
		},
		{
			name:     "null endpoints",
			raw:      `{"name": "Users", "version": "1.0", "endpoints": null}`,
			location: "#/endpoints",
		},
		{
			name:     "endpoint missing method",
			raw:      `{"name": "Users", "version": "1.0", "endpoints": [{"path": "/x", "request_format": "", "response_format": ""}]}`,
			location: "#/endpoints/0",
		},
		{
			name:     "endpoint unknown key",
			raw:      `{"name": "Users", "version": "1.0", "endpoints": [{"path": "/x", "method": "GET", "request_format": "", "response_format": "", "auth": true}]}`,
			location: "#/endpoints/0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDescriptor([]byte(tc.raw))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrSchemaValidation) {
				t.Fatalf("expected ErrSchemaValidation, got %v", err)
			}
			issues := Issues(err)
			if len(issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			found := false
			for _, issue := range issues {
				location := issue.Location
				if !strings.HasPrefix(location, "#") {
					location = "#" + location
				}
				if location == tc.location {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected an issue at %s, got %+v", tc.location, issues)
			}
		})
	}
}

func TestValidateDescriptorMalformedJSON(t *testing.T) {
	err := ValidateDescriptor([]byte(`{"name": `))
	if err == nil {
		t.Fatal("expected malformed JSON to fail")
	}
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	issues := Issues(err)
	if len(issues) != 1 || issues[0].Location != "#" {
		t.Fatalf("expected a single root issue, got %+v", issues)
	}
}

func TestPayloadValidationErrorMessage(t *testing.T) {
	err := &PayloadValidationError{Issues: []ValidationIssue{
		{Location: "/endpoints/0", Message: "missing properties: 'method'"},
		{Location: "#/name"},
	}}
	want := "#/endpoints/0: missing properties: 'method'; #/name"
	if got := err.Error(); got != want {
		t.Fatalf("unexpected message\nwant: %s\ngot:  %s", want, got)
	}
}

func TestIssuesFallsBackToErrorText(t *testing.T) {
	issues := Issues(errors.New("plain"))
	if len(issues) != 1 || issues[0].Message != "plain" {
		t.Fatalf("unexpected issues %+v", issues)
	}
	if Issues(nil) != nil {
		t.Fatal("expected nil issues for nil error")
	}
}
