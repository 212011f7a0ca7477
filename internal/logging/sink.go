package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// EventSink records significant operations (spec loaded, snapshot created)
// for the activity log. Recording is fire-and-forget: a sink must never
// block or fail the operation that emitted the event.
type EventSink interface {
	Record(event string, metadata map[string]any)
}

// FileSink appends events as JSON lines to an activity log file. Write
// failures are swallowed; an activity log must not turn a successful
// operation into a failed one.
type FileSink struct {
	path string
}

// NewFileSink creates a sink appending to the given path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

type logEntry struct {
	Timestamp string         `json:"timestamp"`
	Event     string         `json:"event"`
	Metadata  map[string]any `json:"metadata"`
}

// Record appends one JSON line describing the event. Best-effort only.
func (s *FileSink) Record(event string, metadata map[string]any) {
	if metadata == nil {
		metadata = map[string]any{}
	}
	entry := logEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Event:     event,
		Metadata:  metadata,
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Record(string, map[string]any) {}
