package interviews

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List interviews visible to you",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		interviews, err := client.ListInterviews(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list interviews: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tJOB\tCANDIDATE\tWHEN\tSTATUS")
		for _, iv := range interviews {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				iv.ID, iv.JobTitle, iv.CandidateName,
				iv.ScheduledDate.Local().Format(time.RFC822), iv.Status)
		}
		w.Flush()
		return nil
	},
}
