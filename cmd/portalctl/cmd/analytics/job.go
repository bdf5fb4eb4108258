package analytics

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var jobCmd = &cobra.Command{
	Use:   "job <job-id>",
	Short: "Show analytics for one posting",
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

		stats, err := client.JobStats(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to fetch job analytics: %w", err)
		}

		pterm.DefaultSection.Printf("Job %d\n", stats.JobID)
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Total applications\t%d\n", stats.TotalApplications)
		fmt.Fprintf(w, "Avg match score\t%.1f%%\n", stats.AvgMatchScore)
		fmt.Fprintf(w, "Applied\t%d\n", stats.StatusBreakdown.Applied)
		fmt.Fprintf(w, "Screening\t%d\n", stats.StatusBreakdown.Screening)
		fmt.Fprintf(w, "Interview\t%d\n", stats.StatusBreakdown.Interview)
		fmt.Fprintf(w, "Accepted\t%d\n", stats.StatusBreakdown.Accepted)
		fmt.Fprintf(w, "Rejected\t%d\n", stats.StatusBreakdown.Rejected)
		w.Flush()
		return nil
	},
}
