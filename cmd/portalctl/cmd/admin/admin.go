package admin

import (
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/nav"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

// AdminCmd groups the admin-only views. Each subcommand gates on its own
// path so the redirect message names the view that was denied.
var AdminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administer users, postings and audit logs",
}

func init() {
	AdminCmd.AddCommand(usersCmd)
	AdminCmd.AddCommand(setRoleCmd)
	AdminCmd.AddCommand(jobsCmd)
	AdminCmd.AddCommand(auditLogsCmd)
}

func gate(cmd *cobra.Command, path string) (*sdk.Client, bool, error) {
	cfg := config.MustFromContext(cmd.Context())

	identity, err := cfg.Provider.Identity()
	if err != nil {
		return nil, false, err
	}
	ok, err := nav.Require(identity, path)
	if err != nil || !ok {
		return nil, false, err
	}

	client, err := cfg.Provider.SDKClient()
	if err != nil {
		return nil, false, err
	}
	return client, true, nil
}
