package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/systmms/envkit/cmd/envkit/commands"
	"github.com/systmms/envkit/internal/codec"
	"github.com/systmms/envkit/internal/logging"
	"github.com/systmms/envkit/internal/state"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Global flags
	var (
		specPath string
		stateDir string
		format   string
		noColor  bool
		debug    bool
	)

	// Runtime placeholder, populated once flags are parsed
	rt := &commands.Runtime{}

	rootCmd := &cobra.Command{
		Use:   "envkit",
		Short: "Reproducible environment provisioning from a declarative spec",
		Long: `envkit reads a declarative environment spec (toolchains, secrets,
policies, health checks), validates it, and drives provisioning,
health-checking, deterministic snapshotting, and teardown against local state.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := codec.ForFormat(format)
			if err != nil {
				return err
			}

			paths := state.New(stateDir)

			rt.SpecPath = specPath
			rt.Codec = c
			rt.Paths = paths
			rt.Logger = logging.New(debug, noColor)
			rt.Sink = logging.NewFileSink(paths.LogPath())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&specPath, "spec", "envkit.yaml", "Spec file path")
	rootCmd.PersistentFlags().StringVar(&stateDir, "state-dir", ".envkit", "State directory path")
	rootCmd.PersistentFlags().StringVar(&format, "format", "yaml", "Spec document format (yaml or json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		commands.NewInitCommand(rt),
		commands.NewDoctorCommand(rt),
		commands.NewProvisionCommand(rt),
		commands.NewSnapshotCommand(rt),
		commands.NewDestroyCommand(rt),
		commands.NewPluginsCommand(rt),
	)

	return rootCmd.Execute()
}
