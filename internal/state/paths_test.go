package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCreatesTree(t *testing.T) {
	t.Parallel()

	paths := New(filepath.Join(t.TempDir(), ".envkit"))

	require.NoError(t, paths.Ensure())

	for _, dir := range []string{paths.Root, paths.CacheDir(), paths.SnapshotsDir(), paths.DiagnosticsDir(), paths.PoliciesDir()} {
		info, err := os.Stat(dir)
		require.NoError(t, err, "expected %s to exist", dir)
		assert.True(t, info.IsDir())
	}
}

func TestEnsureIdempotent(t *testing.T) {
	t.Parallel()

	paths := New(filepath.Join(t.TempDir(), ".envkit"))

	require.NoError(t, paths.Ensure())
	require.NoError(t, paths.Ensure())
}

func TestDerivedPaths(t *testing.T) {
	t.Parallel()

	paths := New(".envkit")

	assert.Equal(t, filepath.Join(".envkit", "cache", "toolchains.json"), paths.ToolchainCacheFile())
	assert.Equal(t, filepath.Join(".envkit", "snapshots", "svc.json"), paths.SnapshotFile("svc"))
	assert.Equal(t, filepath.Join(".envkit", "diagnostics", "doctor.json"), paths.DoctorReportFile())
	assert.Equal(t, filepath.Join(".envkit", "activity.log"), paths.LogPath())
}

func TestExists(t *testing.T) {
	t.Parallel()

	paths := New(filepath.Join(t.TempDir(), ".envkit"))

	assert.False(t, paths.Exists())
	require.NoError(t, paths.Ensure())
	assert.True(t, paths.Exists())
}
