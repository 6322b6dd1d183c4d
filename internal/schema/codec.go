package schema

import (
	"bytes"
	"errors"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-zix/internal/validation"
)

const encodeIndent = "  "

// ErrDecode is wrapped by every Decode failure.
var ErrDecode = errors.New("schema decode failed")

// Encode renders s as pretty-printed JSON with two-space indentation, keys
// in declaration order and no trailing newline. HTML characters are not
// escaped so paths like "/a?b&c" stay readable.
func Encode(s Schema) ([]byte, error) {
	if s.Endpoints == nil {
		s.Endpoints = []Endpoint{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", encodeIndent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("schema encode: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a persisted descriptor. Missing keys, type mismatches and
// unknown keys are rejected; the returned error wraps ErrDecode and exposes
// the individual issues through validation.Issues.
func Decode(raw []byte) (Schema, error) {
	if err := validation.ValidateDescriptor(raw); err != nil {
		return Schema{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var s Schema
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Schema{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if s.Endpoints == nil {
		s.Endpoints = []Endpoint{}
	}
	return s, nil
}
