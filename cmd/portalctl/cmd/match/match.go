package match

import (
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/nav"
	"github.com/sabihanjum/Job-Portal/pkg/sdk"
	"github.com/spf13/cobra"
)

// MatchCmd is the parent command for matching and screening operations.
// Scoring, bias detection, and fraud detection all run server-side; these
// commands just submit requests and render results.
var MatchCmd = &cobra.Command{
	Use:   "match",
	Short: "Resume matching and screening tools",
}

func init() {
	MatchCmd.AddCommand(runCmd)
	MatchCmd.AddCommand(biasCmd)
	MatchCmd.AddCommand(fraudCmd)
	MatchCmd.AddCommand(learningPathCmd)
}

func gate(cmd *cobra.Command) (*sdk.Client, bool, error) {
	cfg := config.MustFromContext(cmd.Context())

	identity, err := cfg.Provider.Identity()
	if err != nil {
		return nil, false, err
	}
	ok, err := nav.Require(identity, "/")
	if err != nil || !ok {
		return nil, false, err
	}

	client, err := cfg.Provider.SDKClient()
	if err != nil {
		return nil, false, err
	}
	return client, true, nil
}
