package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/courtside/nbametrics/internal/query"
	"github.com/courtside/nbametrics/internal/report"
	"github.com/courtside/nbametrics/internal/roster"
)

// statsVs restricts the summary to games against one opponent (name,
// nickname, or abbreviation).
var statsVs string

var statsCmd = &cobra.Command{
	Use:   "stats <player>",
	Short: "Season averages, standard deviation, and consistency (CV) per stat",
	Long: `Compute per-stat mean, standard deviation, and coefficient of variation
for a player's season, optionally restricted to games against one opponent.

Examples:
  nbametrics stats "Stephen Curry" --season 2023-24
  nbametrics stats "LeBron James" --season 2023-24 --vs Warriors
  nbametrics stats "LeBron James" --season 2023-24 --vs GSW`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&statsVs, "vs", "", "opponent team name, nickname, or abbreviation")
}

func runStats(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	var res *query.SeasonStats
	if statsVs != "" {
		res, err = svc.VsTeamSummary(ctx, args[0], season, statsVs)
	} else {
		res, err = svc.SeasonSummary(ctx, args[0], season)
	}
	if err != nil {
		return describeResolution(err)
	}

	report.PrintQueryHeader(os.Stdout, res.Player, res.Season, res.Opponent, res.Summary.Games)
	report.PrintStatSummary(os.Stdout, res.Summary)
	return nil
}

// describeResolution prints the candidate table for ambiguous player names so
// the user can pick one, then returns the original error for cobra to report.
func describeResolution(err error) error {
	var ambiguous *roster.AmbiguousPlayerError
	if errors.As(err, &ambiguous) {
		fmt.Fprintf(os.Stderr, "Multiple players match %q:\n\n", ambiguous.Query)
		report.PrintPlayerCandidates(os.Stderr, ambiguous.Candidates)
		fmt.Fprintln(os.Stderr)
	}
	return err
}
