package resumes

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var reparseCmd = &cobra.Command{
	Use:   "reparse <resume-id>",
	Short: "Re-run server-side parsing for a resume",
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

		if _, err := client.ReparseResume(cmd.Context(), id); err != nil {
			return fmt.Errorf("reparse failed: %w", err)
		}

		pterm.Success.Printf("Requested reparse of resume %d\n", id)
		return nil
	},
}
