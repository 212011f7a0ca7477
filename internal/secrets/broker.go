// Package secrets resolves the secrets a spec declares. Values are synthetic
// placeholders; no real provider backend is contacted. Resolved values are
// sealed in memguard enclaves so plaintext never sits in ordinary heap
// memory longer than necessary.
package secrets

import (
	"fmt"

	"github.com/awnumar/memguard"

	"github.com/systmms/envkit/internal/config"
	"github.com/systmms/envkit/internal/logging"
)

// SecretValue is one resolved secret. The plaintext lives in an encrypted
// enclave; call Open to access it and destroy the returned buffer when done.
type SecretValue struct {
	Path     string
	Provider string
	enclave  *memguard.Enclave
}

// Open decrypts the value into a locked buffer. The caller must call
// Destroy on the returned buffer.
func (v *SecretValue) Open() (*memguard.LockedBuffer, error) {
	return v.enclave.Open()
}

// Broker fetches and rotates the secrets declared by a spec.
type Broker struct {
	secrets []config.SecretConfig
	logger  *logging.Logger
	sink    logging.EventSink
}

// NewBroker creates a broker over the spec's secret declarations.
func NewBroker(secrets []config.SecretConfig, logger *logging.Logger, sink logging.EventSink) *Broker {
	return &Broker{
		secrets: secrets,
		logger:  logger,
		sink:    sink,
	}
}

// Fetch resolves every declared secret, keyed by path. Values are synthetic
// placeholders derived from the secret path.
func (b *Broker) Fetch() map[string]*SecretValue {
	resolved := make(map[string]*SecretValue, len(b.secrets))
	for _, secret := range b.secrets {
		value := fmt.Sprintf("placeholder-for-%s", secret.Path)
		resolved[secret.Path] = &SecretValue{
			Path:     secret.Path,
			Provider: secret.Provider,
			enclave:  memguard.NewEnclave([]byte(value)),
		}
		b.logger.Debug("fetched %s from %s: %v", secret.Path, secret.Provider, logging.Secret(value))
		b.sink.Record("secret_fetched", map[string]any{
			"provider": secret.Provider,
			"path":     secret.Path,
		})
	}
	return resolved
}

// Rotate stamps a rotation event for every declared secret.
func (b *Broker) Rotate() {
	for _, secret := range b.secrets {
		b.sink.Record("secret_rotation", map[string]any{
			"provider": secret.Provider,
			"path":     secret.Path,
		})
	}
}
