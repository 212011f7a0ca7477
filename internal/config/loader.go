package config

import (
	"fmt"
	"os"

	"github.com/systmms/envkit/internal/codec"
	enverrors "github.com/systmms/envkit/internal/errors"
)

// Result pairs a validated spec with the path it was loaded from.
type Result struct {
	Spec EnvironmentSpec
	Path string
}

// Load reads, parses, and validates an environment spec document. The
// document is first parsed generically and checked against the spec schema,
// then decoded into the typed model and validated. Load performs no
// filesystem writes.
func Load(path string, c codec.DocumentCodec) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, enverrors.UserError{
				Message:    fmt.Sprintf("Environment spec not found at %s", path),
				Suggestion: "Run 'envkit init' to create a starter spec",
				Err:        err,
			}
		}
		return nil, enverrors.WrapIO("read", path, err)
	}

	var doc map[string]any
	if err := c.Parse(data, &doc); err != nil {
		return nil, enverrors.DeserializationError{
			Path:    path,
			Message: fmt.Sprintf("invalid %s document syntax", c.Name()),
			Err:     err,
		}
	}

	if err := validateDocument(path, doc); err != nil {
		return nil, err
	}

	var spec EnvironmentSpec
	if err := c.Parse(data, &spec); err != nil {
		return nil, enverrors.DeserializationError{
			Path:    path,
			Message: "document does not match the environment spec model",
			Err:     err,
		}
	}

	// Absent sequences load as empty, not nil.
	if spec.Secrets == nil {
		spec.Secrets = []SecretConfig{}
	}
	if spec.Toolchains == nil {
		spec.Toolchains = []Toolchain{}
	}
	if spec.Policies == nil {
		spec.Policies = []string{}
	}
	if spec.Checks == nil {
		spec.Checks = []string{}
	}

	if err := spec.Validate(); err != nil {
		return nil, err
	}

	return &Result{Spec: spec, Path: path}, nil
}

// SampleSpec returns the starter spec written by `envkit init`. It validates
// by construction.
func SampleSpec() EnvironmentSpec {
	rotation := 30
	return EnvironmentSpec{
		Name:        "sample-python-service",
		Description: "Local + CI environment with reproducible toolchains and secrets",
		Secrets: []SecretConfig{
			{Provider: "vault", Path: "kv/services/sample-python-service", RotationDays: &rotation},
		},
		Toolchains: []Toolchain{
			{Name: "python", Version: "3.11"},
			{Name: "node", Version: "20"},
		},
		Policies: []string{"policies/baseline.rego"},
		Checks:   []string{"python --version", "node --version"},
	}
}

// WriteSample renders the starter spec with the given codec, creating or
// overwriting the file at path. Returns the path written.
func WriteSample(path string, c codec.DocumentCodec) (string, error) {
	data, err := c.Render(SampleSpec())
	if err != nil {
		return "", fmt.Errorf("render sample spec: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", enverrors.WrapIO("write", path, err)
	}
	return path, nil
}
