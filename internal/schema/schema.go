// Package schema defines the API schema descriptor persisted by zix and its
// JSON encoding.
package schema

// Schema describes a named, versioned API and its endpoints. Field order is
// the on-disk key order.
type Schema struct {
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	Endpoints []Endpoint `json:"endpoints"`
}

// Endpoint is one HTTP-style entry of a Schema. Every field is always
// serialized, including empty strings.
type Endpoint struct {
	Path           string `json:"path"`
	Method         string `json:"method"`
	RequestFormat  string `json:"request_format"`
	ResponseFormat string `json:"response_format"`
}

// New builds a Schema from CLI style arguments, parsing each endpoint spec
// with ParseEndpoint.
func New(name, version string, endpointSpecs []string) Schema {
	return Schema{
		Name:      name,
		Version:   version,
		Endpoints: ParseEndpoints(endpointSpecs),
	}
}

// Equal reports whether two schemas have the same fields and endpoints in the
// same order. A nil and an empty endpoint list compare equal.
func (s Schema) Equal(other Schema) bool {
	if s.Name != other.Name || s.Version != other.Version {
		return false
	}
	if len(s.Endpoints) != len(other.Endpoints) {
		return false
	}
	for i := range s.Endpoints {
		if s.Endpoints[i] != other.Endpoints[i] {
			return false
		}
	}
	return true
}
