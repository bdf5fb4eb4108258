package match

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var fraudCmd = &cobra.Command{
	Use:   "fraud <resume-id>",
	Short: "Run an authenticity check on a resume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid resume id %q", args[0])
		}

		report, err := client.DetectFraud(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("fraud check failed: %w", err)
		}

		if !report.IsSuspicious {
			pterm.Success.Printf("No red flags (risk score %.2f)\n", report.RiskScore)
			return nil
		}
		pterm.Warning.Printf("Suspicious resume (risk score %.2f): %s\n",
			report.RiskScore, strings.Join(report.Flags, ", "))
		return nil
	},
}
