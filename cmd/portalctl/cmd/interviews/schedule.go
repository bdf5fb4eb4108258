package interviews

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

var (
	scheduleApplication int64
	scheduleWhen        string
	scheduleDuration    int
	scheduleMeetingLink string
	scheduleNotes       string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Book an interview for an application",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		when, err := time.Parse(time.RFC3339, scheduleWhen)
		if err != nil {
			return fmt.Errorf("invalid --when (use RFC3339, e.g. 2026-09-15T14:00:00Z): %w", err)
		}

		interview, err := client.ScheduleInterview(cmd.Context(), sdk.ScheduleInterviewInput{
			Application:     scheduleApplication,
			ScheduledDate:   when,
			DurationMinutes: scheduleDuration,
			MeetingLink:     scheduleMeetingLink,
			Notes:           scheduleNotes,
		})
		if err != nil {
			return fmt.Errorf("failed to schedule interview: %w", err)
		}

		pterm.Success.Printf("Scheduled interview %d for %s at %s\n",
			interview.ID, interview.CandidateName,
			interview.ScheduledDate.Local().Format(time.RFC822))
		return nil
	},
}

func init() {
	scheduleCmd.Flags().Int64Var(&scheduleApplication, "application", 0, "Application ID (required)")
	scheduleCmd.Flags().StringVar(&scheduleWhen, "when", "", "Scheduled time, RFC3339 (required)")
	scheduleCmd.Flags().IntVar(&scheduleDuration, "duration", 60, "Duration in minutes")
	scheduleCmd.Flags().StringVar(&scheduleMeetingLink, "link", "", "Meeting link")
	scheduleCmd.Flags().StringVar(&scheduleNotes, "notes", "", "Notes for the interviewer")
	_ = scheduleCmd.MarkFlagRequired("application")
	_ = scheduleCmd.MarkFlagRequired("when")
}
