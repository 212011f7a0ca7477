package commands

import (
	"github.com/spf13/cobra"

	"github.com/systmms/envkit/internal/provision"
)

func NewDestroyCommand(rt *Runtime) *cobra.Command {
	var preserveCache bool

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Remove envkit state",
		RunE: func(cmd *cobra.Command, args []string) error {
			provisioner := provision.New(rt.Paths, rt.Logger, rt.Sink)
			return provisioner.Destroy(preserveCache)
		},
	}

	cmd.Flags().BoolVar(&preserveCache, "preserve-cache", false, "Keep the cached toolchain manifest")

	return cmd
}
