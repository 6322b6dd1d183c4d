package schema

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goliatone/go-zix/internal/validation"
)

func TestEncodeMinimalSchema(t *testing.T) {
	raw, err := Encode(New("Users", "1.0", nil))
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := "{\n  \"name\": \"Users\",\n  \"version\": \"1.0\",\n  \"endpoints\": []\n}"
	if string(raw) != want {
		t.Fatalf("unexpected encoding\nwant: %s\ngot:  %s", want, raw)
	}
}

func TestEncodeKeepsKeyOrderAndEmptyFields(t *testing.T) {
	raw, err := Encode(New("Foo", "0.1", []string{"/x"}))
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := `{
  "name": "Foo",
  "version": "0.1",
  "endpoints": [
    {
      "path": "/x",
      "method": "GET",
      "request_format": "",
      "response_format": ""
    }
  ]
}`
	if string(raw) != want {
		t.Fatalf("unexpected encoding\nwant: %s\ngot:  %s", want, raw)
	}
}

func TestEncodeDoesNotEscapeHTML(t *testing.T) {
	raw, err := Encode(New("Q", "1", []string{"/search?a=1&b=<2>"}))
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !bytes.Contains(raw, []byte(`"/search?a=1&b=<2>"`)) {
		t.Fatalf("expected raw path in output, got %s", raw)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	s := New("Users", "1.0", []string{"/users,GET,,json", "/users,POST,json,json"})
	first, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	second, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("expected identical encodings")
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []Schema{
		New("Users", "1.0", nil),
		New("Users", "1.0", []string{"/users,GET,,json", "/users,POST,json,json"}),
		New("Odd \"name\"", "", []string{"", ",,,", "/ünïcode,PATCH,a b,c\td"}),
	}
	for _, want := range cases {
		raw, err := Encode(want)
		if err != nil {
			t.Fatalf("Encode(%+v) returned error: %v", want, err)
		}
		got, err := Decode(raw)
		if err != nil {
			t.Fatalf("Decode returned error: %v\n%s", err, raw)
		}
		if !got.Equal(want) {
			t.Fatalf("round trip mismatch\nwant: %+v\ngot:  %+v", want, got)
		}
	}
}

func TestDecodeRejectsStructuralErrors(t *testing.T) {
	cases := map[string]string{
		"malformed":        `{"name": "Users",`,
		"missing version":  `{"name": "Users", "endpoints": []}`,
		"unknown key":      `{"name": "Users", "version": "1", "endpoints": [], "x": 1}`,
		"endpoint type":    `{"name": "Users", "version": "1", "endpoints": [{"path": 1, "method": "GET", "request_format": "", "response_format": ""}]}`,
		"endpoints object": `{"name": "Users", "version": "1", "endpoints": {}}`,
		"not an object":    `[]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(raw))
			if err == nil {
				t.Fatal("expected decode error")
			}
			if !errors.Is(err, ErrDecode) {
				t.Fatalf("expected ErrDecode, got %v", err)
			}
			if len(validation.Issues(err)) == 0 {
				t.Fatalf("expected validation issues, got %v", err)
			}
		})
	}
}

func TestSchemaEqual(t *testing.T) {
	a := Schema{Name: "A", Version: "1"}
	b := Schema{Name: "A", Version: "1", Endpoints: []Endpoint{}}
	if !a.Equal(b) {
		t.Fatal("expected nil and empty endpoints to compare equal")
	}
	b.Endpoints = append(b.Endpoints, Endpoint{Path: "/x"})
	if a.Equal(b) {
		t.Fatal("expected endpoint count to matter")
	}
}
