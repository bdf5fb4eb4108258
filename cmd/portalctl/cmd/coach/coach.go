package coach

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/coach"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/nav"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

// CoachCmd is the career-coach chat. One-shot with a message argument,
// otherwise an interactive loop.
var CoachCmd = &cobra.Command{
	Use:   "coach [message]",
	Short: "Ask the career coach",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		identity, err := cfg.Provider.Identity()
		if err != nil {
			return err
		}
		ok, err := nav.Require(identity, "/")
		if err != nil || !ok {
			return err
		}

		_, principal := identity.State()
		role := principal.Role

		if len(args) == 1 {
			fmt.Println(coach.Respond(role, args[0]))
			return nil
		}
		if cfg.NonInteractive {
			return fmt.Errorf("non-interactive mode requires a message argument")
		}
		return chatLoop(role)
	},
}

func chatLoop(role sdk.Role) error {
	pterm.DefaultSection.Println("Career Coach")
	fmt.Println(coach.Greeting(role))

	if actions := coach.QuickActions(role); len(actions) > 0 {
		pterm.Info.Println("Quick actions:")
		for _, action := range actions {
			fmt.Printf("  %s: %s\n", action.Label, action.Prompt)
		}
	}
	fmt.Println(`Type a message, or "quit" to leave.`)

	for {
		message, err := pterm.DefaultInteractiveTextInput.Show("You")
		if err != nil {
			return fmt.Errorf("chat aborted: %w", err)
		}
		message = strings.TrimSpace(message)
		if message == "" {
			continue
		}
		if message == "quit" || message == "exit" {
			return nil
		}
		fmt.Println(coach.Respond(role, message))
	}
}
