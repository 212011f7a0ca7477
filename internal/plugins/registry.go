// Package plugins is a lightweight registry for extending envkit commands.
package plugins

import (
	"fmt"
	"sort"

	"github.com/systmms/envkit/internal/logging"
)

// Hook is a plugin entry point.
type Hook func() error

// Registry maps plugin names to hooks.
type Registry struct {
	sink  logging.EventSink
	hooks map[string]Hook
}

// NewRegistry creates an empty registry. The default build ships no
// plugins.
func NewRegistry(sink logging.EventSink) *Registry {
	return &Registry{
		sink:  sink,
		hooks: make(map[string]Hook),
	}
}

// Register adds a named hook. Duplicate names are an error.
func (r *Registry) Register(name string, hook Hook) error {
	if _, exists := r.hooks[name]; exists {
		return fmt.Errorf("plugin already registered: %s", name)
	}
	r.hooks[name] = hook
	r.sink.Record("plugin_registered", map[string]any{"name": name})
	return nil
}

// RunAll runs every registered hook in name order, stopping at the first
// failure.
func (r *Registry) RunAll() error {
	for _, name := range r.Names() {
		r.sink.Record("plugin_start", map[string]any{"name": name})
		if err := r.hooks[name](); err != nil {
			return fmt.Errorf("plugin %s: %w", name, err)
		}
		r.sink.Record("plugin_complete", map[string]any{"name": name})
	}
	return nil
}

// Names returns the registered plugin names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.hooks))
	for name := range r.hooks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
