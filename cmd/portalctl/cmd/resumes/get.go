package resumes

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <resume-id>",
	Short: "Show a resume and its parsed fields",
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

		resume, err := client.GetResume(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get resume: %w", err)
		}

		pterm.DefaultSection.Printf("Resume %d\n", resume.ID)
		pterm.Info.Printf("Name: %s | Email: %s | Phone: %s\n", resume.Name, resume.Email, resume.Phone)
		if resume.ProcessingError != "" {
			pterm.Error.Printf("Parsing failed: %s\n", resume.ProcessingError)
			return nil
		}
		if !resume.IsProcessed {
			pterm.Info.Println("Still processing; parsed fields not available yet.")
			return nil
		}
		if len(resume.ParsedData) > 0 {
			var pretty json.RawMessage = resume.ParsedData
			indented, err := json.MarshalIndent(pretty, "", "  ")
			if err == nil {
				fmt.Println(string(indented))
			}
		}
		return nil
	},
}
