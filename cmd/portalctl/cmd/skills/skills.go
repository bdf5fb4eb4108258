package skills

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/config"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/nav"
	"github.com/sabihanjum/Job-Portal/cmd/portalctl/internal/skills"
	"github.com/spf13/cobra"
)

// SkillsCmd is the candidate-only skills assessment view.
var SkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Take a skills assessment",
}

var assessAnswers string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		if proceed, err := gate(cmd); err != nil || !proceed {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tTITLE\tQUESTIONS")
		for _, name := range skills.Names() {
			a, _ := skills.Get(name)
			fmt.Fprintf(w, "%s\t%s\t%d\n", name, a.Name, len(a.Questions))
		}
		return w.Flush()
	},
}

var assessCmd = &cobra.Command{
	Use:   "assess <name>",
	Short: "Run an assessment",
	Long: `Runs the named assessment and scores it locally.

Interactively each question is presented as a menu. With --answers (or in
non-interactive mode) pass a comma-separated list of option numbers,
1-based, one per question.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if proceed, err := gate(cmd); err != nil || !proceed {
			return err
		}
		cfg := config.MustFromContext(cmd.Context())

		assessment, ok := skills.Get(args[0])
		if !ok {
			return fmt.Errorf("unknown assessment %q (try: %s)", args[0], strings.Join(skills.Names(), ", "))
		}

		var answers []int
		var err error
		if assessAnswers != "" || cfg.NonInteractive {
			if assessAnswers == "" {
				return fmt.Errorf("non-interactive mode requires --answers")
			}
			answers, err = parseAnswers(assessAnswers, len(assessment.Questions))
		} else {
			answers, err = promptAnswers(assessment)
		}
		if err != nil {
			return err
		}

		score := skills.Score(assessment, answers)
		total := len(assessment.Questions)
		pterm.DefaultSection.Printf("%s assessment\n", assessment.Name)
		pterm.Success.Printf("Score: %d/%d (%s)\n", score, total, skills.Level(score, total))
		return nil
	},
}

func init() {
	assessCmd.Flags().StringVar(&assessAnswers, "answers", "", "Comma-separated 1-based option numbers")
	SkillsCmd.AddCommand(listCmd)
	SkillsCmd.AddCommand(assessCmd)
}

func gate(cmd *cobra.Command) (bool, error) {
	cfg := config.MustFromContext(cmd.Context())
	identity, err := cfg.Provider.Identity()
	if err != nil {
		return false, err
	}
	return nav.Require(identity, "/skills-assessment")
}

func parseAnswers(raw string, want int) ([]int, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != want {
		return nil, fmt.Errorf("expected %d answers, got %d", want, len(parts))
	}
	answers := make([]int, 0, want)
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid answer %q (use 1-based option numbers)", part)
		}
		answers = append(answers, n-1)
	}
	return answers, nil
}

func promptAnswers(a skills.Assessment) ([]int, error) {
	answers := make([]int, 0, len(a.Questions))
	for i, question := range a.Questions {
		pterm.DefaultSection.Printf("Question %d of %d\n", i+1, len(a.Questions))
		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions(question.Options).
			Show(question.Prompt)
		if err != nil {
			return nil, fmt.Errorf("assessment aborted: %w", err)
		}
		picked := 0
		for j, opt := range question.Options {
			if opt == choice {
				picked = j
				break
			}
		}
		answers = append(answers, picked)
	}
	return answers, nil
}
