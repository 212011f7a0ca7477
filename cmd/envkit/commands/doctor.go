package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/systmms/envkit/internal/doctor"
	enverrors "github.com/systmms/envkit/internal/errors"
)

func NewDoctorCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run environment health checks",
		Long: `Run the builtin health probes plus the check commands declared in the
spec, and save the results as a diagnostics document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadSpec(rt)
			if err != nil {
				return err
			}

			runner := doctor.NewRunner(rt.Logger, rt.Sink)
			report := runner.Run(cmd.Context(), result.Spec.Checks)

			status := "pass"
			if !report.Passed() {
				status = "fail"
			}

			if err := rt.Paths.Ensure(); err != nil {
				return enverrors.WrapIO("create", rt.Paths.Root, err)
			}

			data, err := json.MarshalIndent(report.Outputs(), "", "  ")
			if err != nil {
				return err
			}
			reportPath := rt.Paths.DoctorReportFile()
			if err := os.WriteFile(reportPath, append(data, '\n'), 0o644); err != nil {
				return enverrors.WrapIO("write", reportPath, err)
			}

			rt.Logger.Info("Doctor status: %s. Details saved to %s", status, reportPath)
			return nil
		},
	}
}
