// Package state derives every filesystem location envkit touches from a
// single root directory. The Paths value is constructed once per invocation
// and threaded explicitly into the components that need it; nothing reads a
// package-level constant.
package state

import (
	"os"
	"path/filepath"
)

// Paths locates the envkit state directory tree.
type Paths struct {
	Root string
}

// New returns the paths rooted at the given state directory.
func New(root string) Paths {
	return Paths{Root: root}
}

// CacheDir holds cached toolchain manifests.
func (p Paths) CacheDir() string {
	return filepath.Join(p.Root, "cache")
}

// SnapshotsDir holds the per-spec-name lockfile archive.
func (p Paths) SnapshotsDir() string {
	return filepath.Join(p.Root, "snapshots")
}

// DiagnosticsDir holds doctor reports.
func (p Paths) DiagnosticsDir() string {
	return filepath.Join(p.Root, "diagnostics")
}

// PoliciesDir holds rendered policy material.
func (p Paths) PoliciesDir() string {
	return filepath.Join(p.Root, "policies")
}

// LogPath is the activity log file.
func (p Paths) LogPath() string {
	return filepath.Join(p.Root, "activity.log")
}

// ToolchainCacheFile is the cached toolchain manifest.
func (p Paths) ToolchainCacheFile() string {
	return filepath.Join(p.CacheDir(), "toolchains.json")
}

// CacheBackupFile survives a destroy when --preserve-cache is set.
func (p Paths) CacheBackupFile() string {
	return filepath.Join(p.Root, "cache_backup.json")
}

// ProvisionSummaryFile records the last provisioned spec.
func (p Paths) ProvisionSummaryFile() string {
	return filepath.Join(p.Root, "last_provision.json")
}

// DoctorReportFile is where doctor writes its diagnostics document.
func (p Paths) DoctorReportFile() string {
	return filepath.Join(p.DiagnosticsDir(), "doctor.json")
}

// SnapshotFile returns the archive entry for a spec name.
func (p Paths) SnapshotFile(specName string) string {
	return filepath.Join(p.SnapshotsDir(), specName+".json")
}

// Ensure creates the state directory tree. Idempotent: existing directories
// are left untouched and missing parents are created.
func (p Paths) Ensure() error {
	for _, dir := range []string{p.Root, p.CacheDir(), p.SnapshotsDir(), p.DiagnosticsDir(), p.PoliciesDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Exists reports whether the state root has been created.
func (p Paths) Exists() bool {
	info, err := os.Stat(p.Root)
	return err == nil && info.IsDir()
}
