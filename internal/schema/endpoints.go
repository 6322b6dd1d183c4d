package schema

import "strings"

// DefaultMethod is assigned when an endpoint spec omits the method field.
const DefaultMethod = "GET"

const endpointFieldSeparator = ","

// ParseEndpoint decodes a "path,method,request_format,response_format" spec.
// Fields are split on commas verbatim: no trimming, quoting or escaping.
// Missing trailing fields default to "" except method, which defaults to
// DefaultMethod. Fields past the fourth are discarded.
func ParseEndpoint(spec string) Endpoint {
	parts := strings.SplitN(spec, endpointFieldSeparator, 5)
	field := func(idx int, fallback string) string {
		if idx < len(parts) {
			return parts[idx]
		}
		return fallback
	}
	return Endpoint{
		Path:           field(0, ""),
		Method:         field(1, DefaultMethod),
		RequestFormat:  field(2, ""),
		ResponseFormat: field(3, ""),
	}
}

// ParseEndpoints parses specs in order. The result is never nil so an empty
// list encodes as [].
func ParseEndpoints(specs []string) []Endpoint {
	endpoints := make([]Endpoint, 0, len(specs))
	for _, spec := range specs {
		endpoints = append(endpoints, ParseEndpoint(spec))
	}
	return endpoints
}
