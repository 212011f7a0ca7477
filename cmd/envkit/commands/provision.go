package commands

import (
	"github.com/spf13/cobra"

	"github.com/systmms/envkit/internal/provision"
	"github.com/systmms/envkit/internal/secrets"
)

func NewProvisionCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "provision",
		Short: "Provision an environment from the spec",
		Long: `Resolve the spec's secrets, cache its toolchains, render its policy
references, and record a provision summary in the state directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadSpec(rt)
			if err != nil {
				return err
			}

			broker := secrets.NewBroker(result.Spec.Secrets, rt.Logger, rt.Sink)
			broker.Fetch()

			provisioner := provision.New(rt.Paths, rt.Logger, rt.Sink)
			if _, err := provisioner.Provision(result.Spec); err != nil {
				return err
			}

			rt.Logger.Info("Provisioning completed.")
			return nil
		},
	}
}
