package jobs

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var applyResumeID int64

var applyCmd = &cobra.Command{
	Use:   "apply <job-id>",
	Short: "Apply to a job with one of your resumes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		jobID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid job id %q", args[0])
		}

		application, err := client.ApplyToJob(cmd.Context(), jobID, applyResumeID)
		if err != nil {
			return fmt.Errorf("failed to apply: %w", err)
		}

		pterm.Success.Printf("Applied to %s (application %d, status %s)\n",
			application.JobTitle, application.ID, application.Status)
		return nil
	},
}

func init() {
	applyCmd.Flags().Int64Var(&applyResumeID, "resume", 0, "Resume ID to attach (required)")
	_ = applyCmd.MarkFlagRequired("resume")
}
