package resumes

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your resumes",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		resumes, err := client.ListResumes(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list resumes: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPROCESSED\tUPLOADED")
		for _, resume := range resumes {
			processed := "yes"
			if !resume.IsProcessed {
				processed = "no"
				if resume.ProcessingError != "" {
					processed = "error"
				}
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				resume.ID, resume.Name, resume.Email, processed,
				resume.CreatedAt.Format("2006-01-02"))
		}
		w.Flush()
		return nil
	},
}
