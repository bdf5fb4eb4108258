package jobs

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

var updateInput sdk.JobInput

var updateCmd = &cobra.Command{
	Use:   "update <job-id>",
	Short: "Update a job posting",
	Long:  `Applies a partial update; only the flags you pass are changed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid job id %q", args[0])
		}

		job, err := client.UpdateJob(cmd.Context(), id, updateInput)
		if err != nil {
			return fmt.Errorf("failed to update job: %w", err)
		}

		pterm.Success.Printf("Updated job %d: %s\n", job.ID, job.Title)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateInput.Title, "title", "", "Job title")
	updateCmd.Flags().StringVar(&updateInput.Description, "description", "", "Job description")
	updateCmd.Flags().StringVar(&updateInput.Requirements, "requirements", "", "Job requirements")
	updateCmd.Flags().StringVar(&updateInput.Location, "location", "", "Location")
	updateCmd.Flags().StringSliceVar(&updateInput.RequiredSkills, "skill", nil, "Required skill (repeatable, replaces the set)")
}
