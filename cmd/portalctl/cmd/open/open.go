package open

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/nav"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

var listViews bool

// OpenCmd navigates to a portal view the way the web client routes: the
// guard decides whether the view renders, redirects to login, or falls back
// to the role's landing view.
var OpenCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Navigate to a portal view",
	Long: `Evaluates the route guard for a view and renders it if allowed.

With no path, opens your role's default landing view. Use --list to see all
views and the roles they require.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if listViews {
			printViews()
			return nil
		}

		path := "/"
		if len(args) == 1 {
			path = args[0]
		}

		cfg := config.MustFromContext(cmd.Context())
		identity, err := cfg.Provider.Identity()
		if err != nil {
			return err
		}

		out, ok := nav.Navigate(identity, path)
		if !ok {
			return fmt.Errorf("unknown view %q (see portalctl open --list)", path)
		}

		switch out.Decision {
		case nav.DecisionLoading:
			pterm.Info.Println("Loading session...")
		case nav.DecisionRedirectLogin:
			pterm.Warning.Println("Redirected to login: portalctl auth login")
		case nav.DecisionRedirectDefault:
			pterm.Warning.Printf("Not authorized for %s; redirected to %s.\n", out.Dest.Title, out.Landing)
			renderLanding(identity)
		case nav.DecisionAllow:
			renderView(identity, out.Dest)
		}
		return nil
	},
}

func init() {
	OpenCmd.Flags().BoolVar(&listViews, "list", false, "List all views and their required roles")
}

func printViews() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tVIEW\tACCESS")
	for _, dest := range nav.Destinations() {
		access := "any authenticated user"
		switch {
		case dest.Public:
			access = "public"
		case len(dest.Roles) > 0:
			roles := make([]string, len(dest.Roles))
			for i, role := range dest.Roles {
				roles[i] = role.String()
			}
			access = strings.Join(roles, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", dest.Path, dest.Title, access)
	}
	w.Flush()
}

func renderLanding(identity *sdk.Identity) {
	_, principal := identity.State()
	if principal == nil {
		pterm.Warning.Println("Redirected to login: portalctl auth login")
		return
	}
	landing, ok := nav.Landing(principal.Role)
	if !ok {
		// Unrecognized role in the stored session; treat as corrupt.
		pterm.Warning.Println("Your session has an unsupported role; please log in again.")
		return
	}
	pterm.DefaultSection.Println(landing)
	printDashboardHints(principal.Role)
}

func renderView(identity *sdk.Identity, dest nav.Destination) {
	if dest.Path == "/" {
		renderLanding(identity)
		return
	}

	pterm.DefaultSection.Println(dest.Title)
	switch dest.Path {
	case "/jobs":
		pterm.Info.Println("Browse postings with: portalctl jobs list")
	case "/analytics":
		pterm.Info.Println("Fetch the dashboard with: portalctl analytics dashboard")
	case "/admin/users":
		pterm.Info.Println("Manage accounts with: portalctl admin users")
	case "/admin/jobs":
		pterm.Info.Println("Manage postings with: portalctl admin jobs")
	case "/admin/audit-logs":
		pterm.Info.Println("Review activity with: portalctl admin audit-logs")
	case "/skills-assessment":
		pterm.Info.Println("Take a quiz with: portalctl skills assess <topic>")
	case "/login":
		pterm.Info.Println("Log in with: portalctl auth login")
	case "/register":
		pterm.Info.Println("Create an account with: portalctl auth register")
	}
}

func printDashboardHints(role sdk.Role) {
	switch role {
	case sdk.RoleCandidate:
		pterm.Info.Println("Jobs:        portalctl jobs list")
		pterm.Info.Println("Resumes:     portalctl resumes list")
		pterm.Info.Println("Matches:     portalctl match run --resume <id>")
		pterm.Info.Println("Assessment:  portalctl skills assess <topic>")
	case sdk.RoleRecruiter:
		pterm.Info.Println("Postings:    portalctl jobs list")
		pterm.Info.Println("Applicants:  portalctl jobs applications")
		pterm.Info.Println("Interviews:  portalctl interviews list")
		pterm.Info.Println("Analytics:   portalctl analytics dashboard")
	case sdk.RoleAdmin:
		pterm.Info.Println("Users:       portalctl admin users")
		pterm.Info.Println("Audit logs:  portalctl admin audit-logs")
		pterm.Info.Println("Analytics:   portalctl analytics dashboard")
	}
}
