package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSinkAppendsJSONLines(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "state", "activity.log")
	sink := NewFileSink(logPath)

	sink.Record("spec_loaded", map[string]any{"path": "envkit.yaml"})
	sink.Record("snapshot_created", map[string]any{"path": "envkit.lock.json"})

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()

	var events []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry struct {
			Timestamp string         `json:"timestamp"`
			Event     string         `json:"event"`
			Metadata  map[string]any `json:"metadata"`
		}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		assert.NotEmpty(t, entry.Timestamp)
		events = append(events, entry.Event)
	}
	require.NoError(t, scanner.Err())

	assert.Equal(t, []string{"spec_loaded", "snapshot_created"}, events)
}

func TestFileSinkNilMetadata(t *testing.T) {
	t.Parallel()

	logPath := filepath.Join(t.TempDir(), "activity.log")
	sink := NewFileSink(logPath)

	sink.Record("state_initialized", nil)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"metadata":{}`)
}

func TestFileSinkSwallowsWriteFailures(t *testing.T) {
	t.Parallel()

	// A directory cannot be opened for appending; Record must not panic or
	// surface the failure.
	dir := t.TempDir()
	sink := NewFileSink(dir)

	assert.NotPanics(t, func() {
		sink.Record("snapshot_created", map[string]any{"path": "x"})
	})
}

func TestNopSink(t *testing.T) {
	t.Parallel()

	var sink EventSink = NopSink{}
	assert.NotPanics(t, func() {
		sink.Record("anything", nil)
	})
}
