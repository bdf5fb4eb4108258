package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/spf13/cobra"
)

var shellFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the access token as an environment variable",
	Long: `Outputs shell commands that set PORTAL_API_TOKEN from the stored session,
for scripting against the API with curl or for CI.

Usage:
  # POSIX shells (bash/zsh/sh)
  eval $(portalctl auth export)

  # Fish shell
  eval (portalctl auth export --shell fish)

  # PowerShell
  portalctl auth export --shell powershell | Invoke-Expression`,
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
			return fmt.Errorf("not logged in\n\nPlease run 'portalctl auth login' first")
		}

		format := shellFormat
		if format == "" {
			format = detectShell()
		}

		switch strings.ToLower(format) {
		case "posix", "bash", "zsh", "sh":
			fmt.Printf("export PORTAL_API_TOKEN=%q\n", creds.AccessToken)
		case "fish":
			fmt.Printf("set -x PORTAL_API_TOKEN %q\n", creds.AccessToken)
		case "powershell", "pwsh", "ps1":
			fmt.Printf("$env:PORTAL_API_TOKEN=%q\n", creds.AccessToken)
		default:
			return fmt.Errorf("unsupported shell format: %s (posix, fish, powershell)", format)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&shellFormat, "shell", "", "Shell format: posix, fish, powershell (auto-detected if not specified)")
}

func detectShell() string {
	switch filepath.Base(os.Getenv("SHELL")) {
	case "fish":
		return "fish"
	case "pwsh", "powershell":
		return "powershell"
	default:
		return "posix"
	}
}
