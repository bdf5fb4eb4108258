package match

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

var (
	runResumeID int64
	runJobIDs   []int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score a resume against jobs",
	Long: `Submits a resume for matching. Without --job flags the backend scores it
against active postings.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		matches, err := client.MatchResume(cmd.Context(), sdk.MatchResumeInput{
			ResumeID: runResumeID,
			JobIDs:   runJobIDs,
		})
		if err != nil {
			return fmt.Errorf("matching failed: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "JOB\tSCORE\tMATCHED\tMISSING")
		for _, m := range matches {
			fmt.Fprintf(w, "%s\t%.0f%%\t%s\t%s\n",
				m.JobTitle, m.MatchPercentage,
				strings.Join(m.MatchedSkills, ", "),
				strings.Join(m.MissingSkills, ", "))
		}
		w.Flush()
		return nil
	},
}

func init() {
	runCmd.Flags().Int64Var(&runResumeID, "resume", 0, "Resume ID to match (required)")
	runCmd.Flags().Int64SliceVar(&runJobIDs, "job", nil, "Job ID to match against (repeatable)")
	_ = runCmd.MarkFlagRequired("resume")
}
