package interviews

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var questionsCmd = &cobra.Command{
	Use:   "questions <interview-id>",
	Short: "Generate questions for an interview",
	Long:  `Asks the backend to draft questions from the job posting and resume.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid interview id %q", args[0])
		}

		interview, err := client.GenerateInterviewQuestions(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to generate questions: %w", err)
		}

		pterm.DefaultSection.Printf("Questions for interview %d\n", interview.ID)
		for i, question := range interview.Questions {
			fmt.Printf("%d. %s\n", i+1, question)
		}
		return nil
	},
}
