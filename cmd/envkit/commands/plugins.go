package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/systmms/envkit/internal/plugins"
)

func NewPluginsCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List registered plugins",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := plugins.NewRegistry(rt.Sink)

			names := registry.Names()
			if len(names) == 0 {
				rt.Logger.Info("No plugins registered")
				return nil
			}

			rt.Logger.Info("Registered plugins: %s", strings.Join(names, ", "))
			return nil
		},
	}
}
