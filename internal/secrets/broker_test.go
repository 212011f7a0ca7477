package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/envkit/internal/config"
	"github.com/systmms/envkit/internal/logging"
)

type recordingSink struct {
	events []string
	paths  []string
}

func (s *recordingSink) Record(event string, metadata map[string]any) {
	s.events = append(s.events, event)
	if path, ok := metadata["path"].(string); ok {
		s.paths = append(s.paths, path)
	}
}

func testSecrets() []config.SecretConfig {
	return []config.SecretConfig{
		{Provider: "vault", Path: "kv/services/svc"},
		{Provider: "aws-secrets-manager", Path: "svc/api-key"},
	}
}

func TestFetchReturnsPlaceholderValues(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	broker := NewBroker(testSecrets(), logging.New(false, true), sink)

	resolved := broker.Fetch()
	require.Len(t, resolved, 2)

	value, ok := resolved["kv/services/svc"]
	require.True(t, ok)
	assert.Equal(t, "vault", value.Provider)

	buf, err := value.Open()
	require.NoError(t, err)
	defer buf.Destroy()
	assert.Equal(t, "placeholder-for-kv/services/svc", string(buf.Bytes()))
}

func TestFetchRecordsEvents(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	broker := NewBroker(testSecrets(), logging.New(false, true), sink)

	broker.Fetch()

	assert.Equal(t, []string{"secret_fetched", "secret_fetched"}, sink.events)
	assert.Equal(t, []string{"kv/services/svc", "svc/api-key"}, sink.paths)
}

func TestRotateRecordsEvents(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	broker := NewBroker(testSecrets(), logging.New(false, true), sink)

	broker.Rotate()

	assert.Equal(t, []string{"secret_rotation", "secret_rotation"}, sink.events)
}

func TestFetchEmptySpec(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	broker := NewBroker(nil, logging.New(false, true), sink)

	resolved := broker.Fetch()

	assert.Empty(t, resolved)
	assert.Empty(t, sink.events)
}
