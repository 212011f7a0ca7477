package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/systmms/envkit/internal/logging"
)

type recordingSink struct {
	events []string
}

func (s *recordingSink) Record(event string, metadata map[string]any) {
	s.events = append(s.events, event)
}

func newRunner(sink logging.EventSink) *Runner {
	return &Runner{
		Logger: logging.New(false, true),
		Sink:   sink,
	}
}

func TestRunPassingCheck(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	runner := newRunner(sink)

	report := runner.Run(context.Background(), []string{"echo hello"})

	require.Len(t, report.Results, 1)
	assert.Equal(t, "custom-1", report.Results[0].Name)
	assert.True(t, report.Results[0].Passed)
	assert.Equal(t, "hello", report.Results[0].Output)
	assert.True(t, report.Passed())
	assert.Equal(t, []string{"health_check_pass"}, sink.events)
}

func TestRunFailingCheck(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	runner := newRunner(sink)

	report := runner.Run(context.Background(), []string{"exit 3"})

	require.Len(t, report.Results, 1)
	assert.False(t, report.Results[0].Passed)
	assert.False(t, report.Passed())
	assert.Equal(t, []string{"health_check_fail"}, sink.events)
}

func TestRunStderrFallback(t *testing.T) {
	t.Parallel()

	runner := newRunner(&recordingSink{})

	report := runner.Run(context.Background(), []string{"echo oops >&2; exit 1"})

	require.Len(t, report.Results, 1)
	assert.Equal(t, "oops", report.Results[0].Output)
}

func TestRunNamesCustomChecksInOrder(t *testing.T) {
	t.Parallel()

	runner := newRunner(&recordingSink{})

	report := runner.Run(context.Background(), []string{"true", "false", "true"})

	require.Len(t, report.Results, 3)
	assert.Equal(t, "custom-1", report.Results[0].Name)
	assert.Equal(t, "custom-2", report.Results[1].Name)
	assert.Equal(t, "custom-3", report.Results[2].Name)
	assert.False(t, report.Passed())
}

func TestRunIncludesBuiltins(t *testing.T) {
	t.Parallel()

	runner := newRunner(&recordingSink{})
	runner.Builtins = []Check{{Name: "shell", Command: "true"}}

	report := runner.Run(context.Background(), []string{"true"})

	require.Len(t, report.Results, 2)
	assert.Equal(t, "shell", report.Results[0].Name)
	assert.Equal(t, "custom-1", report.Results[1].Name)
}

func TestOutputs(t *testing.T) {
	t.Parallel()

	report := Report{Results: []CheckResult{
		{Name: "custom-1", Passed: true, Output: "ok"},
		{Name: "custom-2", Passed: false, Output: "boom"},
	}}

	assert.Equal(t, map[string]string{"custom-1": "ok", "custom-2": "boom"}, report.Outputs())
}

func TestRunCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := newRunner(&recordingSink{})
	report := runner.Run(ctx, []string{"echo hello"})

	require.Len(t, report.Results, 1)
	assert.False(t, report.Results[0].Passed)
}
