package auth

import (
	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Fetch the authenticated profile from the backend",
	Long: `Calls the profile endpoint with the stored credential. A rejected
credential clears the session and asks you to log in again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		client, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		// Ensure the identity provider is wired so a 401 converges the
		// local session, not just the store.
		if _, err := cfg.Provider.Identity(); err != nil {
			return err
		}

		principal, err := client.Profile(cmd.Context())
		if err != nil {
			return err
		}

		pterm.Info.Printf("%s (%s) - role: %s\n", principal.DisplayName(), principal.Email, principal.Role)
		return nil
	},
}
