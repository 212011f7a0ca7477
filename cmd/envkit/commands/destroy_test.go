package commands

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/envkit/internal/codec"
	"github.com/systmms/envkit/internal/config"
)

func TestDestroyCommand_RemovesState(t *testing.T) {
	t.Parallel()

	rt, _ := newTestRuntime(t, codec.YAML{})
	require.NoError(t, rt.Paths.Ensure())

	cmd := NewDestroyCommand(rt)
	require.NoError(t, cmd.Execute())

	assert.False(t, rt.Paths.Exists())
}

func TestDestroyCommand_PreserveCache(t *testing.T) {
	t.Parallel()

	rt, _ := newTestRuntime(t, codec.YAML{})
	_, err := config.WriteSample(rt.SpecPath, rt.Codec)
	require.NoError(t, err)

	provisionCmd := NewProvisionCommand(rt)
	require.NoError(t, provisionCmd.Execute())

	cmd := NewDestroyCommand(rt)
	cmd.SetArgs([]string{"--preserve-cache"})
	require.NoError(t, cmd.Execute())

	backup, err := os.ReadFile(rt.Paths.CacheBackupFile())
	require.NoError(t, err)
	assert.Contains(t, string(backup), `"name": "python"`)

	_, err = os.Stat(rt.Paths.ToolchainCacheFile())
	assert.True(t, os.IsNotExist(err))
}

func TestDestroyCommand_NoState(t *testing.T) {
	t.Parallel()

	rt, _ := newTestRuntime(t, codec.YAML{})

	cmd := NewDestroyCommand(rt)
	require.NoError(t, cmd.Execute())
}
