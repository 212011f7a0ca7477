// Package doctor runs environment health checks by shelling out to the
// commands a spec declares, plus a small set of builtin probes.
package doctor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/systmms/envkit/internal/logging"
)

// Check is a named shell command probed for a zero exit status.
type Check struct {
	Name    string
	Command string
}

// BuiltinChecks are probed on every doctor run, before the spec's own
// checks.
func BuiltinChecks() []Check {
	return []Check{
		{Name: "python", Command: "python --version"},
		{Name: "git", Command: "git --version"},
	}
}

// CheckResult captures the outcome of one check.
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Output string `json:"output"`
}

// Report aggregates check results.
type Report struct {
	Results []CheckResult
}

// Passed reports whether every check succeeded.
func (r Report) Passed() bool {
	for _, result := range r.Results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// Outputs maps check names to their captured output, the shape persisted to
// the diagnostics document.
func (r Report) Outputs() map[string]string {
	outputs := make(map[string]string, len(r.Results))
	for _, result := range r.Results {
		outputs[result.Name] = result.Output
	}
	return outputs
}

// Runner executes health checks.
type Runner struct {
	Builtins []Check
	Logger   *logging.Logger
	Sink     logging.EventSink
}

// NewRunner creates a runner with the builtin probes enabled.
func NewRunner(logger *logging.Logger, sink logging.EventSink) *Runner {
	return &Runner{
		Builtins: BuiltinChecks(),
		Logger:   logger,
		Sink:     sink,
	}
}

// Run executes the builtin checks followed by the spec's checks, named
// custom-1..custom-N in sequence order.
func (r *Runner) Run(ctx context.Context, specChecks []string) Report {
	var results []CheckResult
	for _, check := range r.Builtins {
		results = append(results, r.runCheck(ctx, check.Name, check.Command))
	}
	for idx, command := range specChecks {
		name := fmt.Sprintf("custom-%d", idx+1)
		results = append(results, r.runCheck(ctx, name, command))
	}
	return Report{Results: results}
}

func (r *Runner) runCheck(ctx context.Context, name, command string) CheckResult {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	output := strings.TrimSpace(stdout.String())
	if output == "" {
		output = strings.TrimSpace(stderr.String())
	}

	if err != nil {
		r.Logger.Debug("check %s failed: %v", name, err)
		r.Sink.Record("health_check_fail", map[string]any{
			"name":    name,
			"command": command,
			"output":  output,
		})
		return CheckResult{Name: name, Passed: false, Output: output}
	}

	r.Sink.Record("health_check_pass", map[string]any{
		"name":    name,
		"command": command,
		"output":  output,
	})
	return CheckResult{Name: name, Passed: true, Output: output}
}
