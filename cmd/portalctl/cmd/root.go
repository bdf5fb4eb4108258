package cmd

import (
	"fmt"
	"os"

	"github.com/sabihanjum/Job-Portal/cmd/portalctl/cmd/admin"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/cmd/analytics"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/cmd/auth"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/cmd/coach"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/cmd/interviews"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/cmd/jobs"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/cmd/match"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/cmd/open"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/cmd/resumes"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/cmd/skills"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/client"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/spf13/cobra"
)

var (
	serverURL      string
	apiBaseURL     string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "Job-Portal CLI - role-gated client for the recruitment platform",
	Long: `portalctl is the command-line client for the Job-Portal platform. It covers
the candidate, recruiter, and admin workflows: browsing and managing jobs,
uploading resumes, matching, interviews, analytics, and administration.

Views are gated by your role; log in with 'portalctl auth login' first.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if env := os.Getenv("PORTAL_SERVER_URL"); env != "" && !cmd.Flags().Changed("server") {
			serverURL = env
		}
		if env := os.Getenv("PORTAL_API_URL"); env != "" && apiBaseURL == "" {
			apiBaseURL = env
		}
		if os.Getenv("PORTAL_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}

		provider := client.NewProvider(serverURL, apiBaseURL)
		if token := os.Getenv("PORTAL_API_TOKEN"); token != "" {
			provider.SetBearerToken(token)
		}

		cfg := &config.GlobalConfig{
			ServerURL:      serverURL,
			APIBaseURL:     apiBaseURL,
			NonInteractive: nonInteractive,
			Provider:       provider,
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "Job-Portal backend URL (also PORTAL_SERVER_URL)")
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api-url", "", "Explicit API base URL, used verbatim (also PORTAL_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also PORTAL_NON_INTERACTIVE=1)")

	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(open.OpenCmd)
	rootCmd.AddCommand(jobs.JobsCmd)
	rootCmd.AddCommand(resumes.ResumesCmd)
	rootCmd.AddCommand(match.MatchCmd)
	rootCmd.AddCommand(interviews.InterviewsCmd)
	rootCmd.AddCommand(analytics.AnalyticsCmd)
	rootCmd.AddCommand(admin.AdminCmd)
	rootCmd.AddCommand(skills.SkillsCmd)
	rootCmd.AddCommand(coach.CoachCmd)
}
