package admin

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List every posting on the platform",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd, "/admin/jobs")
		if err != nil || !proceed {
			return err
		}

		jobs, err := client.ListJobs(cmd.Context(), sdk.ListJobsOptions{})
		if err != nil {
			return fmt.Errorf("failed to list postings: %w", err)
		}
		if len(jobs) == 0 {
			pterm.Info.Println("No postings found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tPOSTED BY\tACTIVE")
		for _, job := range jobs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n",
				job.ID, job.Title, job.Company, job.PostedByName, job.IsActive)
		}
		return w.Flush()
	},
}
