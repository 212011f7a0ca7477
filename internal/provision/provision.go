// Package provision drives environment provisioning and teardown against
// the local state directory.
package provision

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/systmms/envkit/internal/config"
	enverrors "github.com/systmms/envkit/internal/errors"
	"github.com/systmms/envkit/internal/logging"
	"github.com/systmms/envkit/internal/state"
)

// Provisioner applies a validated spec to the local state tree.
type Provisioner struct {
	Paths  state.Paths
	Logger *logging.Logger
	Sink   logging.EventSink
}

// New creates a provisioner.
func New(paths state.Paths, logger *logging.Logger, sink logging.EventSink) *Provisioner {
	return &Provisioner{
		Paths:  paths,
		Logger: logger,
		Sink:   sink,
	}
}

// CacheToolchains writes the spec's toolchain manifest into the cache
// directory and returns the cache file path.
func (p *Provisioner) CacheToolchains(toolchains []config.Toolchain) (string, error) {
	if err := p.Paths.Ensure(); err != nil {
		return "", enverrors.WrapIO("create", p.Paths.Root, err)
	}

	manifest := make([]map[string]string, 0, len(toolchains))
	for _, tool := range toolchains {
		manifest = append(manifest, tool.AsMap())
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode toolchain manifest: %w", err)
	}

	cacheFile := p.Paths.ToolchainCacheFile()
	if err := os.WriteFile(cacheFile, append(data, '\n'), 0o644); err != nil {
		return "", enverrors.WrapIO("write", cacheFile, err)
	}

	p.Sink.Record("cache_toolchains", map[string]any{"path": cacheFile})
	return cacheFile, nil
}

// ApplyPolicies reads each referenced policy document. A missing reference
// renders as "missing:<ref>" rather than failing the provision; policy
// evaluation itself happens elsewhere.
func (p *Provisioner) ApplyPolicies(policies []string) ([]string, error) {
	rendered := make([]string, 0, len(policies))
	for _, policy := range policies {
		content, err := os.ReadFile(policy)
		if err != nil {
			if os.IsNotExist(err) {
				p.Sink.Record("policy_missing", map[string]any{"policy": policy})
				rendered = append(rendered, "missing:"+policy)
				continue
			}
			return nil, enverrors.WrapIO("read", policy, err)
		}
		rendered = append(rendered, string(content))
	}

	p.Sink.Record("policies_loaded", map[string]any{"count": len(rendered)})
	return rendered, nil
}

// Provision caches the spec's toolchains, renders its policies, and writes
// the provision summary. Returns the summary path.
func (p *Provisioner) Provision(spec config.EnvironmentSpec) (string, error) {
	if err := p.Paths.Ensure(); err != nil {
		return "", enverrors.WrapIO("create", p.Paths.Root, err)
	}

	if _, err := p.CacheToolchains(spec.Toolchains); err != nil {
		return "", err
	}
	if _, err := p.ApplyPolicies(spec.Policies); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(spec.CanonicalMap(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode provision summary: %w", err)
	}

	summaryPath := p.Paths.ProvisionSummaryFile()
	if err := os.WriteFile(summaryPath, append(data, '\n'), 0o644); err != nil {
		return "", enverrors.WrapIO("write", summaryPath, err)
	}

	p.Logger.Info("Provisioned environment '%s' with %d toolchains", spec.Name, len(spec.Toolchains))
	return summaryPath, nil
}

// Destroy removes the state tree. With preserveCache, the toolchain cache
// manifest is kept as cache_backup.json under a recreated state root so a
// later provision can reuse it.
func (p *Provisioner) Destroy(preserveCache bool) error {
	if !p.Paths.Exists() {
		p.Logger.Info("No environment state found to destroy")
		return nil
	}

	var cached []byte
	if preserveCache {
		if data, err := os.ReadFile(p.Paths.ToolchainCacheFile()); err == nil {
			cached = data
		}
	}

	if err := os.RemoveAll(p.Paths.Root); err != nil {
		return enverrors.WrapIO("remove", p.Paths.Root, err)
	}

	if cached != nil {
		if err := os.MkdirAll(p.Paths.Root, 0o755); err != nil {
			return enverrors.WrapIO("create", p.Paths.Root, err)
		}
		backupPath := p.Paths.CacheBackupFile()
		if err := os.WriteFile(backupPath, cached, 0o644); err != nil {
			return enverrors.WrapIO("write", backupPath, err)
		}
	}

	p.Logger.Info("Environment state removed")
	return nil
}
