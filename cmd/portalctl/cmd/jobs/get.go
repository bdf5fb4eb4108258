package jobs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <job-id>",
	Short: "Show one job posting",
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

		job, err := client.GetJob(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get job: %w", err)
		}

		pterm.DefaultSection.Printf("%s at %s\n", job.Title, job.Company)
		pterm.Info.Printf("Location: %s | Type: %s | Level: %s\n", job.Location, job.JobType, job.ExperienceLevel)
		if job.SalaryMax > 0 {
			pterm.Info.Printf("Salary: %.0f - %.0f\n", job.SalaryMin, job.SalaryMax)
		}
		if len(job.RequiredSkills) > 0 {
			pterm.Info.Printf("Skills: %s\n", strings.Join(job.RequiredSkills, ", "))
		}
		fmt.Println()
		fmt.Println(job.Description)
		if job.Requirements != "" {
			fmt.Println()
			fmt.Println("Requirements:")
			fmt.Println(job.Requirements)
		}
		return nil
	},
}
