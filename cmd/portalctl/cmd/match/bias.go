package match

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var biasCmd = &cobra.Command{
	Use:   "bias <text>",
	Short: "Check a job description for exclusionary language",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		report, err := client.DetectBias(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("bias check failed: %w", err)
		}

		if !report.HasBias {
			pterm.Success.Println("No biased language detected")
			return nil
		}
		pterm.Warning.Printf("Potentially biased terms: %s\n", strings.Join(report.BiasedTerms, ", "))
		for _, suggestion := range report.Suggestions {
			pterm.Info.Println(suggestion)
		}
		return nil
	},
}
