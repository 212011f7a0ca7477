// Package codec defines the document format used for environment spec files.
// The format is chosen explicitly at startup; there is no runtime detection
// or silent fallback between formats.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DocumentCodec parses and renders spec documents in one external format.
type DocumentCodec interface {
	Name() string
	Parse(data []byte, v any) error
	Render(v any) ([]byte, error)
}

// YAML reads and writes YAML documents. Since YAML is a superset of JSON,
// this codec also accepts plain JSON input.
type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Parse(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

func (YAML) Render(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JSON reads and writes JSON documents with 2-space indentation.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Parse(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (JSON) Render(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ForFormat returns the codec for a format name. Unknown names are an error
// rather than a fallback.
func ForFormat(name string) (DocumentCodec, error) {
	switch name {
	case "yaml", "yml":
		return YAML{}, nil
	case "json":
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("unsupported document format %q (supported: yaml, json)", name)
	}
}
