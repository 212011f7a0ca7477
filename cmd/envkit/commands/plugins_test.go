package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/envkit/internal/codec"
	"github.com/systmms/envkit/internal/logging"
)

func TestPluginsCommand_EmptyRegistry(t *testing.T) {
	t.Parallel()

	rt, _ := newTestRuntime(t, codec.YAML{})
	var buf bytes.Buffer
	rt.Logger = logging.NewWithWriter(&buf, false, true)

	cmd := NewPluginsCommand(rt)
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "No plugins registered")
}
