package auth

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		identity, err := identityFromCmd(cmd)
		if err != nil {
			return err
		}
		if err := identity.Logout(); err != nil {
			return err
		}
		fmt.Println("Logged out successfully")
		return nil
	},
}
