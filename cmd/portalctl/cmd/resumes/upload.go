package resumes

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a resume document",
	Long: `Uploads a resume for server-side parsing. Parsing is asynchronous;
check 'portalctl resumes get' for the extracted fields.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd)
		if err != nil || !proceed {
			return err
		}

		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer file.Close()

		resume, err := client.UploadResume(cmd.Context(), args[0], file)
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}

		pterm.Success.Printf("Uploaded resume %d (%s)\n", resume.ID, resume.FileType)
		return nil
	},
}
