package jobs

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

var (
	listSearch   string
	listLocation string
	listJobType  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List job postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		jobs, err := client.ListJobs(ctx, sdk.ListJobsOptions{
			Search:   listSearch,
			Location: listLocation,
			JobType:  listJobType,
		})
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCOMPANY\tLOCATION\tTYPE\tACTIVE")
		for _, job := range jobs {
			active := "yes"
			if !job.IsActive {
				active = "no"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				job.ID, job.Title, job.Company, job.Location, job.JobType, active)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "Full-text search over title and description")
	listCmd.Flags().StringVar(&listLocation, "location", "", "Filter by location")
	listCmd.Flags().StringVar(&listJobType, "type", "", "Filter by job type (full_time, part_time, contract)")
}
