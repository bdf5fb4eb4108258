package analytics

import (
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/nav"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

// AnalyticsCmd is the parent command for the analytics views. The guard
// restricts these to recruiters and admins; candidates are redirected to
// their landing view.
var AnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Platform and job analytics",
}

func init() {
	AnalyticsCmd.AddCommand(dashboardCmd)
	AnalyticsCmd.AddCommand(jobCmd)
}

func gate(cmd *cobra.Command) (*sdk.Client, bool, error) {
	cfg := config.MustFromContext(cmd.Context())

	identity, err := cfg.Provider.Identity()
	if err != nil {
		return nil, false, err
	}
	ok, err := nav.Require(identity, "/analytics")
	if err != nil || !ok {
		return nil, false, err
	}

	client, err := cfg.Provider.SDKClient()
	if err != nil {
		return nil, false, err
	}
	return client, true, nil
}
