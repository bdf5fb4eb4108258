package jobs

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "List applications visible to you",
	Long: `Candidates see their own applications; recruiters see applications to
their postings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		applications, err := client.ListApplications(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list applications: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tJOB\tCANDIDATE\tSTATUS\tMATCH")
		for _, app := range applications {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.0f%%\n",
				app.ID, app.JobTitle, app.CandidateName, app.Status, app.MatchScore)
		}
		w.Flush()
		return nil
	},
}
