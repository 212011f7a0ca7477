package commands

import (
	"github.com/spf13/cobra"

	"github.com/systmms/envkit/internal/snapshot"
)

func NewSnapshotCommand(rt *Runtime) *cobra.Command {
	var lockPath string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Create a deterministic lockfile",
		Long: `Fingerprint the validated spec and write a lock document pairing the
fingerprint with the spec's toolchains and policies. A copy is archived per
spec name under the state directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadSpec(rt)
			if err != nil {
				return err
			}

			writer := &snapshot.Writer{Paths: rt.Paths, Sink: rt.Sink}
			written, err := writer.Write(result.Spec, lockPath)
			if err != nil {
				return err
			}

			rt.Logger.Info("Snapshot written to %s", written)
			return nil
		},
	}

	cmd.Flags().StringVar(&lockPath, "lock", "envkit.lock.json", "Lockfile path")

	return cmd
}
