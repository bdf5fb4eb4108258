package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/nav"
	"github.com/spf13/cobra"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the Job-Portal backend",
	Long: `Authenticates with a username and password and stores the session locally.

Credentials can be passed via flags or entered interactively. The stored
session is attached to every subsequent command until logout or expiry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		username, password := loginUsername, loginPassword
		if username == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("username required in non-interactive mode (use --username)")
			}
			entered, err := pterm.DefaultInteractiveTextInput.Show("Username")
			if err != nil {
				return err
			}
			username = entered
		}
		if password == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("password required in non-interactive mode (use --password)")
			}
			entered, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
			password = entered
		}

		identity, err := cfg.Provider.Identity()
		if err != nil {
			return err
		}

		principal, err := identity.Login(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		pterm.Success.Printf("Logged in as %s (%s)\n", principal.DisplayName(), principal.Role)
		if landing, ok := nav.Landing(principal.Role); ok {
			pterm.Info.Printf("Your landing view is the %s: portalctl open /\n", landing)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (prompted when omitted)")
}
