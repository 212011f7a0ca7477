// Package fingerprint derives a stable content hash for a validated
// environment spec, suitable as a cache or identity key.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"

	"github.com/systmms/envkit/internal/config"
)

// Fingerprint hashes the spec's canonical representation and returns a
// 64-character hex digest. The canonical form serializes map keys in
// lexicographic order at every nesting level (RFC 8785), so structurally
// equal specs hash identically regardless of field construction order, while
// list element order remains significant.
func Fingerprint(spec config.EnvironmentSpec) (string, error) {
	raw, err := json.Marshal(spec.CanonicalMap())
	if err != nil {
		return "", fmt.Errorf("serialize spec for fingerprinting: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalize spec: %w", err)
	}

	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
