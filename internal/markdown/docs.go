package markdown

import (
	"strings"

	"github.com/goliatone/go-zix/internal/schema"
)

// RenderDocs formats s as Markdown. The output is a pure function of s:
//
//	# API Documentation for <name>
//
//	## Version: <version>
//
//	## Endpoints
//
//	- **Path**: <path>
//	  **Method**: <method>
//	  **Request Format**: <request_format>
//	  **Response Format**: <response_format>
//
// with the endpoint block repeated in order. Values are written verbatim.
func RenderDocs(s schema.Schema) string {
	var b strings.Builder
	b.WriteString("# API Documentation for " + s.Name + "\n\n")
	b.WriteString("## Version: " + s.Version + "\n\n")
	b.WriteString("## Endpoints\n\n")

	for _, ep := range s.Endpoints {
		b.WriteString("- **Path**: " + ep.Path + "\n")
		b.WriteString("  **Method**: " + ep.Method + "\n")
		b.WriteString("  **Request Format**: " + ep.RequestFormat + "\n")
		b.WriteString("  **Response Format**: " + ep.ResponseFormat + "\n\n")
	}
	return b.String()
}
