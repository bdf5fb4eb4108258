package auth

import (
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for auth operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Commands for logging in and out and inspecting your session.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(whoamiCmd)
	AuthCmd.AddCommand(exportCmd)
}

func identityFromCmd(cmd *cobra.Command) (*sdk.Identity, error) {
	cfg := config.MustFromContext(cmd.Context())
	return cfg.Provider.Identity()
}
