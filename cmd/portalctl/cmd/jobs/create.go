package jobs

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

var createInput sdk.JobInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Post a new job",
	Long:  `Creates a posting. The backend restricts this to recruiter accounts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		job, err := client.CreateJob(cmd.Context(), createInput)
		if err != nil {
			return fmt.Errorf("failed to create job: %w", err)
		}

		pterm.Success.Printf("Posted job %d: %s at %s\n", job.ID, job.Title, job.Company)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createInput.Title, "title", "", "Job title (required)")
	createCmd.Flags().StringVar(&createInput.Description, "description", "", "Job description")
	createCmd.Flags().StringVar(&createInput.Requirements, "requirements", "", "Job requirements")
	createCmd.Flags().StringVar(&createInput.Company, "company", "", "Company name")
	createCmd.Flags().StringVar(&createInput.Location, "location", "", "Location")
	createCmd.Flags().StringVar(&createInput.JobType, "type", "full_time", "Job type")
	createCmd.Flags().StringVar(&createInput.ExperienceLevel, "level", "", "Experience level")
	createCmd.Flags().Float64Var(&createInput.SalaryMin, "salary-min", 0, "Salary range lower bound")
	createCmd.Flags().Float64Var(&createInput.SalaryMax, "salary-max", 0, "Salary range upper bound")
	createCmd.Flags().StringSliceVar(&createInput.RequiredSkills, "skill", nil, "Required skill (repeatable)")
	createCmd.Flags().IntVar(&createInput.ExperienceYears, "experience-years", 0, "Years of experience")
	_ = createCmd.MarkFlagRequired("title")
}
