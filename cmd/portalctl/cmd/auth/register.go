package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

var registerInput sdk.RegisterInput

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Job-Portal account",
	Long: `Creates an account and logs the new user in immediately.

The role defaults to candidate; recruiters register with --role recruiter.
Admin accounts are provisioned server-side and cannot be self-registered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if registerInput.Username == "" || registerInput.Password == "" || registerInput.Email == "" {
			return fmt.Errorf("--username, --email, and --password are required")
		}
		if registerInput.Role != "" && !registerInput.Role.Known() {
			return fmt.Errorf("unknown role %q (candidate or recruiter)", registerInput.Role)
		}

		identity, err := cfg.Provider.Identity()
		if err != nil {
			return err
		}

		principal, err := identity.Register(cmd.Context(), registerInput)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		pterm.Success.Printf("Account created; logged in as %s (%s)\n", principal.DisplayName(), principal.Role)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerInput.Username, "username", "", "Account username")
	registerCmd.Flags().StringVar(&registerInput.Email, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerInput.Password, "password", "", "Account password")
	registerCmd.Flags().StringVar((*string)(&registerInput.Role), "role", "", "Account role: candidate (default) or recruiter")
	registerCmd.Flags().StringVar(&registerInput.FirstName, "first-name", "", "First name")
	registerCmd.Flags().StringVar(&registerInput.LastName, "last-name", "", "Last name")
	registerCmd.Flags().StringVar(&registerInput.Phone, "phone", "", "Phone number")
	registerCmd.Flags().StringVar(&registerInput.Company, "company", "", "Company (recruiters)")
}
