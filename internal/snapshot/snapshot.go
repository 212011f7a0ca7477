// Package snapshot writes deterministic lockfile documents pairing a spec
// fingerprint with its toolchain and policy data.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/systmms/envkit/internal/config"
	enverrors "github.com/systmms/envkit/internal/errors"
	"github.com/systmms/envkit/internal/fingerprint"
	"github.com/systmms/envkit/internal/logging"
	"github.com/systmms/envkit/internal/state"
)

// Writer persists lock documents to a user-facing lock path and to the
// per-spec-name archive under the state directory.
type Writer struct {
	Paths state.Paths
	Sink  logging.EventSink
}

type lockToolchain struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Source  string `json:"source"`
}

type lockDocument struct {
	Fingerprint string          `json:"fingerprint"`
	Toolchains  []lockToolchain `json:"toolchains"`
	Policies    []string        `json:"policies"`
}

// Write computes the spec's fingerprint, assembles the lock document, and
// writes it to lockPath and to the archive entry keyed by the spec name.
// Re-snapshotting the same named spec overwrites its archive entry; distinct
// names produce side-by-side entries. Returns the lock path written.
func (w *Writer) Write(spec config.EnvironmentSpec, lockPath string) (string, error) {
	fp, err := fingerprint.Fingerprint(spec)
	if err != nil {
		return "", fmt.Errorf("fingerprint spec %q: %w", spec.Name, err)
	}

	doc := lockDocument{
		Fingerprint: fp,
		Toolchains:  make([]lockToolchain, 0, len(spec.Toolchains)),
		Policies:    []string{},
	}
	for _, tool := range spec.Toolchains {
		doc.Toolchains = append(doc.Toolchains, lockToolchain{
			Name:    tool.Name,
			Version: tool.Version,
			Source:  tool.Source,
		})
	}
	if spec.Policies != nil {
		doc.Policies = spec.Policies
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode lock document: %w", err)
	}
	data = append(data, '\n')

	if err := w.Paths.Ensure(); err != nil {
		return "", enverrors.WrapIO("create", w.Paths.Root, err)
	}

	if err := os.WriteFile(lockPath, data, 0o644); err != nil {
		return "", enverrors.WrapIO("write", lockPath, err)
	}

	archivePath := w.Paths.SnapshotFile(spec.Name)
	if err := os.WriteFile(archivePath, data, 0o644); err != nil {
		return "", enverrors.WrapIO("write", archivePath, err)
	}

	w.Sink.Record("snapshot_created", map[string]any{
		"name":        spec.Name,
		"path":        lockPath,
		"fingerprint": fp,
	})

	return lockPath, nil
}
