package commands

import (
	"github.com/systmms/envkit/internal/codec"
	"github.com/systmms/envkit/internal/config"
	"github.com/systmms/envkit/internal/logging"
	"github.com/systmms/envkit/internal/state"
)

// Runtime carries the per-invocation wiring shared by every command: where
// the spec lives, which document format is in use, the state paths, and the
// logging capabilities. It is populated once by the root command.
type Runtime struct {
	SpecPath string
	Codec    codec.DocumentCodec
	Paths    state.Paths
	Logger   *logging.Logger
	Sink     logging.EventSink
}

// loadSpec loads and validates the spec, recording the load in the activity
// log.
func loadSpec(rt *Runtime) (*config.Result, error) {
	result, err := config.Load(rt.SpecPath, rt.Codec)
	if err != nil {
		return nil, err
	}
	rt.Sink.Record("spec_loaded", map[string]any{
		"path": result.Path,
		"name": result.Spec.Name,
	})
	return result, nil
}
