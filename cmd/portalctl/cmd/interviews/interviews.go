package interviews

import (
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/nav"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

// InterviewsCmd is the parent command for interview operations.
var InterviewsCmd = &cobra.Command{
	Use:   "interviews",
	Short: "Schedule and review interviews",
}

func init() {
	InterviewsCmd.AddCommand(listCmd)
	InterviewsCmd.AddCommand(scheduleCmd)
	InterviewsCmd.AddCommand(questionsCmd)
}

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
