package schema

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// JSONSchema is a JSON-encoded schema that supports unmarshalling from both
// JSON and YAML sources. When unmarshalling from YAML, the YAML node is first
// decoded to a native Go value and then marshalled to JSON bytes.
type JSONSchema json.RawMessage

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewJSONSchema returns the JSON encoding of a jsonschema.Schema
func NewJSONSchema(s *jsonschema.Schema) (JSONSchema, error) {
	if s == nil {
		return nil, nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return JSONSchema(data), nil
}

// ReadJSONSchema reads a schema from a reader. YAML is a superset of JSON,
// so both encodings are accepted.
func ReadJSONSchema(r io.Reader) (JSONSchema, error) {
	var s JSONSchema
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadJSONSchemaFile reads a schema from a .json, .yaml or .yml file
func ReadJSONSchemaFile(path string) (JSONSchema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Use the JSON decoder for JSON files, so that numbers are preserved
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var s JSONSchema
		if err := json.NewDecoder(f).Decode(&s); err != nil {
			return nil, err
		}
		return s, nil
	}
	return ReadJSONSchema(f)
}

////////////////////////////////////////////////////////////////////////////////
// METHODS

// Bytes returns the underlying JSON bytes.
func (s JSONSchema) Bytes() []byte {
	return []byte(s)
}

// Schema decodes the JSON bytes into a jsonschema.Schema
func (s JSONSchema) Schema() (*jsonschema.Schema, error) {
	if len(s) == 0 {
		return nil, nil
	}
	var result jsonschema.Schema
	if err := json.Unmarshal(s, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

func (s JSONSchema) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return []byte(s), nil
}

func (s *JSONSchema) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}
	*s = append((*s)[:0], data...)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// YAML UNMARSHALLING

func (s *JSONSchema) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	*s = data
	return nil
}
