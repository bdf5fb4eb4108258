package resumes

import (
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/nav"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

// ResumesCmd is the parent command for resume operations.
var ResumesCmd = &cobra.Command{
	Use:   "resumes",
	Short: "Upload and inspect resumes",
}

func init() {
	ResumesCmd.AddCommand(uploadCmd)
	ResumesCmd.AddCommand(listCmd)
	ResumesCmd.AddCommand(getCmd)
	ResumesCmd.AddCommand(reparseCmd)
}

// Resumes live on the dashboard view, so any authenticated role passes.
func gate(cmd *cobra.Command) (*sdk.Client, bool, error) {
	cfg := config.MustFromContext(cmd.Context())

	identity, err := cfg.Provider.Identity()
	if err != nil {
		return nil, false, err
	}
	ok, err := nav.Require(identity, "/")
	if err != nil || !ok {
		return nil, false, err
	}

	client, err := cfg.Provider.SDKClient()
	if err != nil {
		return nil, false, err
	}
	return client, true, nil
}
