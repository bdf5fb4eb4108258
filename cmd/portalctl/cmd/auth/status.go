package auth

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display the stored session",
	Long: `Shows the locally stored session without contacting the backend.
Use 'portalctl auth whoami' to verify the session against the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		store, err := cfg.Provider.Store()
		if err != nil {
			return err
		}
		creds, err := store.LoadCredentials()
		if err != nil {
			return err
		}
		if creds == nil {
			return fmt.Errorf("not logged in")
		}

		pterm.DefaultSection.Println("Session Status")

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Username\t%s\n", creds.Principal.Username)
		fmt.Fprintf(w, "Name\t%s\n", creds.Principal.DisplayName())
		fmt.Fprintf(w, "Role\t%s\n", creds.Principal.Role)
		if creds.Principal.Email != "" {
			fmt.Fprintf(w, "Email\t%s\n", creds.Principal.Email)
		}
		if creds.Principal.Company != "" {
			fmt.Fprintf(w, "Company\t%s\n", creds.Principal.Company)
		}
		if expiry := tokenExpiry(creds.AccessToken); !expiry.IsZero() {
			fmt.Fprintf(w, "Token expires\t%s\n", expiry.Format(time.RFC1123))
			if time.Now().After(expiry) {
				fmt.Fprintf(w, "\t(expired - the next request will force a re-login)\n")
			}
		}
		w.Flush()

		return nil
	},
}

// tokenExpiry extracts the exp claim without verifying the signature. The
// token is the backend's to validate; this is display only.
func tokenExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
