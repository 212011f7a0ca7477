// Package config defines the environment specification model, its
// validation rules, and the loader for spec documents.
package config

import (
	"fmt"
	"strings"

	enverrors "github.com/systmms/envkit/internal/errors"
)

// SupportedSecretProviders is the whitelist of secret backends a spec may
// reference.
var SupportedSecretProviders = map[string]bool{
	"vault":               true,
	"aws-secrets-manager": true,
	"azure-key-vault":     true,
	"gcp-secret-manager":  true,
}

// SecretConfig declares one secret an environment needs.
type SecretConfig struct {
	Provider     string `yaml:"provider" json:"provider"`
	Path         string `yaml:"path" json:"path"`
	RotationDays *int   `yaml:"rotation_days,omitempty" json:"rotation_days,omitempty"`
}

// Validate checks the secret's invariants.
func (s SecretConfig) Validate() error {
	if !SupportedSecretProviders[s.Provider] {
		return enverrors.ValidationError{
			Field:      "provider",
			Message:    fmt.Sprintf("Unsupported secret provider: %s", s.Provider),
			Suggestion: "Supported providers: vault, aws-secrets-manager, azure-key-vault, gcp-secret-manager",
		}
	}
	if s.Path == "" {
		return enverrors.ValidationError{
			Field:   "path",
			Message: "Secret path must be provided",
		}
	}
	if s.RotationDays != nil && *s.RotationDays <= 0 {
		return enverrors.ValidationError{
			Field:   "rotation_days",
			Message: "rotation_days must be positive when provided",
		}
	}
	return nil
}

// Toolchain is a named software component with a version and optional
// provenance.
type Toolchain struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version" json:"version"`
	Source  string `yaml:"source,omitempty" json:"source,omitempty"`
}

// AsMap returns the toolchain's serialized form. Source is always present,
// defaulting to the empty string.
func (t Toolchain) AsMap() map[string]string {
	return map[string]string{
		"name":    t.Name,
		"version": t.Version,
		"source":  t.Source,
	}
}

// EnvironmentSpec is the declarative description of an environment.
// Constructed fresh on every load; never mutated after validation.
type EnvironmentSpec struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description" json:"description"`
	Secrets     []SecretConfig `yaml:"secrets,omitempty" json:"secrets,omitempty"`
	Toolchains  []Toolchain    `yaml:"toolchains,omitempty" json:"toolchains,omitempty"`
	Policies    []string       `yaml:"policies,omitempty" json:"policies,omitempty"`
	Checks      []string       `yaml:"checks,omitempty" json:"checks,omitempty"`
}

// Validate is a pure, fail-fast check of the spec's invariants. Check order
// is fixed: name, then each secret in sequence order, then each policy in
// sequence order; the first violation determines the reported error.
func (s EnvironmentSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return enverrors.ValidationError{
			Field:      "name",
			Message:    "Environment name is required",
			Suggestion: "Set a non-empty 'name' at the top of your spec",
		}
	}
	for _, secret := range s.Secrets {
		if err := secret.Validate(); err != nil {
			return err
		}
	}
	for _, policy := range s.Policies {
		if strings.TrimSpace(policy) == "" {
			return enverrors.ValidationError{
				Field:   "policies",
				Message: "Policy references cannot be empty",
			}
		}
	}
	return nil
}

// CanonicalMap returns the spec's canonical nested key-value representation.
// List order is preserved (it is semantically significant); optional fields
// are normalized: absent rotation_days encodes as null, absent toolchain
// source as the empty string, and nil lists as empty lists. This is the
// structure the fingerprint is computed over and the provision summary is
// written from.
func (s EnvironmentSpec) CanonicalMap() map[string]any {
	secrets := make([]any, 0, len(s.Secrets))
	for _, secret := range s.Secrets {
		entry := map[string]any{
			"provider":      secret.Provider,
			"path":          secret.Path,
			"rotation_days": nil,
		}
		if secret.RotationDays != nil {
			entry["rotation_days"] = *secret.RotationDays
		}
		secrets = append(secrets, entry)
	}

	toolchains := make([]any, 0, len(s.Toolchains))
	for _, tool := range s.Toolchains {
		toolchains = append(toolchains, tool.AsMap())
	}

	policies := s.Policies
	if policies == nil {
		policies = []string{}
	}
	checks := s.Checks
	if checks == nil {
		checks = []string{}
	}

	return map[string]any{
		"name":        s.Name,
		"description": s.Description,
		"secrets":     secrets,
		"toolchains":  toolchains,
		"policies":    policies,
		"checks":      checks,
	}
}
