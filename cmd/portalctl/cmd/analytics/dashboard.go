package analytics

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the platform analytics dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		stats, err := client.DashboardStats(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch analytics: %w", err)
		}

		pterm.DefaultSection.Println("Pipeline")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Total applications\t%d\n", stats.PipelineStats.TotalApplications)
		fmt.Fprintf(w, "In screening\t%d\n", stats.PipelineStats.Screening)
		fmt.Fprintf(w, "In interview\t%d\n", stats.PipelineStats.Interview)
		fmt.Fprintf(w, "Accepted\t%d\n", stats.PipelineStats.Accepted)
		fmt.Fprintf(w, "Rejected\t%d\n", stats.PipelineStats.Rejected)
		fmt.Fprintf(w, "Avg match score\t%.1f%%\n", stats.AvgMatchScore)
		fmt.Fprintf(w, "Time to shortlist\t%.1f days\n", stats.TimeToShortlistDays)
		w.Flush()

		if len(stats.ApplicationsPerJob) > 0 {
			pterm.DefaultSection.Println("Applications per job")
			w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "JOB\tCOMPANY\tAPPLICATIONS")
			for _, row := range stats.ApplicationsPerJob {
				fmt.Fprintf(w, "%s\t%s\t%d\n", row.JobTitle, row.JobCompany, row.Count)
			}
			w.Flush()
		}

		if len(stats.MostCommonSkills) > 0 {
			pterm.DefaultSection.Println("Most common skills")
			bars := make([]pterm.Bar, 0, len(stats.MostCommonSkills))
			for _, skill := range stats.MostCommonSkills {
				bars = append(bars, pterm.Bar{Label: skill.Skill, Value: skill.Count})
			}
			_ = pterm.DefaultBarChart.WithHorizontal().WithBars(bars).Render()
		}
		return nil
	},
}
