package commands

import (
	"github.com/spf13/cobra"

	"github.com/systmms/envkit/internal/config"
)

func NewInitCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a starter environment spec",
		Long:  "Write a sample spec file and bootstrap the local state directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := config.WriteSample(rt.SpecPath, rt.Codec)
			if err != nil {
				return err
			}

			if err := rt.Paths.Ensure(); err != nil {
				return err
			}
			rt.Sink.Record("state_initialized", map[string]any{"root": rt.Paths.Root})

			rt.Logger.Info("Initialized environment spec at %s", created)
			rt.Logger.Info("Next steps:")
			rt.Logger.Info("  1. Edit %s to describe your environment", created)
			rt.Logger.Info("  2. Run 'envkit doctor' to verify your machine")
			rt.Logger.Info("  3. Run 'envkit provision' to apply the spec")

			return nil
		},
	}
}
