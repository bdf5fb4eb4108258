package match

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var learningPathCmd = &cobra.Command{
	Use:   "learning-path <skill> [skill...]",
	Short: "Suggest resources for closing a skill gap",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		steps, err := client.LearningPath(cmd.Context(), args)
		if err != nil {
			return fmt.Errorf("failed to build learning path: %w", err)
		}

		for _, step := range steps {
			pterm.DefaultSection.Println(step.Skill)
			if step.Duration != "" {
				pterm.Info.Printf("Estimated duration: %s\n", step.Duration)
			}
			for _, resource := range step.Resources {
				fmt.Printf("  - %s\n", resource)
			}
		}
		return nil
	},
}
