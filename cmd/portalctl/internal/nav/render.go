package nav

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
)

// Require runs the guard for path and reports whether the calling command
// may proceed. Redirect outcomes are rendered to the terminal and return
// false without an error: being unauthorized is a policy outcome, not a
// failure. Unknown paths are an error.
func Require(identity *sdk.Identity, path string) (bool, error) {
	out, ok := Navigate(identity, path)
	if !ok {
		return false, fmt.Errorf("unknown view %q", path)
	}

	switch out.Decision {
	case DecisionAllow:
		return true, nil
	case DecisionLoading:
		pterm.Info.Println("Session is still loading, try again.")
		return false, nil
	case DecisionRedirectLogin:
		pterm.Warning.Println("You need to log in first: portalctl auth login")
		return false, nil
	case DecisionRedirectDefault:
		pterm.Warning.Printf("%s is not available for your role; returning to %s.\n", out.Dest.Title, out.Landing)
		return false, nil
	}
	return false, fmt.Errorf("unhandled navigation decision %v", out.Decision)
}
