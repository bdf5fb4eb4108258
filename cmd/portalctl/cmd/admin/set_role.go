package admin

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

var setRoleCmd = &cobra.Command{
	Use:   "set-role <user-id> <role>",
	Short: "Change an account's role",
	Long: `Changes the role stored for an account on the server.

A live session of the affected user keeps its old role until that user
logs in again; the change is not pushed to running sessions.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, proceed, err := gate(cmd, "/admin/users")
		if err != nil || !proceed {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		role := sdk.Role(args[1])
		if !role.Known() {
			return fmt.Errorf("unknown role %q (want candidate, recruiter or admin)", args[1])
		}

		user, err := client.UpdateUserRole(cmd.Context(), id, role)
		if err != nil {
			return fmt.Errorf("failed to update role: %w", err)
		}

		pterm.Success.Printf("%s is now a %s\n", user.Username, user.Role)
		pterm.Info.Println("The change applies from their next login")
		return nil
	},
}
