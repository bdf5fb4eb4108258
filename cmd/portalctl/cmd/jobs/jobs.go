package jobs

import (
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/nav"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

// JobsCmd is the parent command for job operations.
var JobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and manage job postings",
}

func init() {
	JobsCmd.AddCommand(listCmd)
	JobsCmd.AddCommand(getCmd)
	JobsCmd.AddCommand(createCmd)
	JobsCmd.AddCommand(updateCmd)
	JobsCmd.AddCommand(deleteCmd)
	JobsCmd.AddCommand(applyCmd)
	JobsCmd.AddCommand(applicationsCmd)
}

// gate runs the route guard for the jobs view and returns the API client
// when the view may render. proceed=false with a nil error means the guard
// redirected; the command should exit quietly.
func gate(cmd *cobra.Command) (client *sdk.Client, proceed bool, err error) {
	cfg := config.MustFromContext(cmd.Context())

	identity, err := cfg.Provider.Identity()
	if err != nil {
		return nil, false, err
	}
	ok, err := nav.Require(identity, "/jobs")
	if err != nil || !ok {
		return nil, false, err
	}

	sdkClient, err := cfg.Provider.SDKClient()
	if err != nil {
		return nil, false, err
	}
	return sdkClient, true, nil
}
